package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/pageindex/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve read-only queries over a document via HTTP",
	Long: `Parse a document once and serve its tree over HTTP:

  GET  /api/tree                     serialized tree
  GET  /api/outline                  plain-text outline
  GET  /api/nodes                    all section ids
  GET  /api/nodes/{id}[?children=1]  one section with breadcrumb
  GET  /api/nodes/{id}/children      direct children
  POST /api/parse?doc_id=...         parse the request body as a new document`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := cfg.SlogLevel()
		if err != nil {
			return err
		}
		log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		tree, err := loadTree(cmd, args[0])
		if err != nil {
			return err
		}
		log.Info("loaded document",
			"doc_id", tree.DocID,
			"title", tree.Title,
			"nodes", len(tree.AllNodeIDs()),
		)

		addr := cfg.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		httpServer := &http.Server{
			Addr:         addr,
			Handler:      server.New(tree, log, cfg),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting pageindex server", "addr", addr)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: PAGEINDEX_ADDR or :8088)")
	addDocIDFlag(serveCmd)
	rootCmd.AddCommand(serveCmd)
}
