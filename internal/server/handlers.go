package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/itsmostafa/pageindex/internal/pageindex"
)

type nodeResponse struct {
	*pageindex.NodeResult
	TokenEstimate int `json:"token_estimate"`
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	body, err := s.tree.JSON()
	if err != nil {
		s.log.Error("encode tree", "doc_id", s.tree.DocID, "error", err)
		jsonError(w, "failed to encode tree", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(pageindex.GetTreeOutline(s.tree)))
}

func (s *Server) handleNodeIDs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"node_ids": s.tree.AllNodeIDs()})
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")

	withChildren := false
	if v := r.URL.Query().Get("children"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, "children must be a boolean", http.StatusBadRequest)
			return
		}
		withChildren = b
	}

	var (
		res *pageindex.NodeResult
		ok  bool
	)
	if withChildren {
		res, ok = pageindex.GetNodeWithChildren(s.tree, nodeID)
	} else {
		res, ok = pageindex.GetNode(s.tree, nodeID)
	}
	if !ok {
		jsonError(w, "node "+nodeID+" not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, nodeResponse{
		NodeResult:    res,
		TokenEstimate: pageindex.CountTokens(res.Text),
	})
}

func (s *Server) handleChildren(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")
	writeJSON(w, http.StatusOK, pageindex.GetChildren(s.tree, nodeID))
}

// handleParse parses the request body as a new document and returns its
// serialized tree. The served tree is left untouched.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	docID := r.URL.Query().Get("doc_id")
	if docID == "" {
		jsonError(w, "doc_id query parameter is required", http.StatusBadRequest)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	tree, err := pageindex.FromReader(docID, body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			jsonError(w, "document exceeds upload limit", http.StatusRequestEntityTooLarge)
		case errors.Is(err, pageindex.ErrInvalidEncoding):
			jsonError(w, "document is not valid UTF-8", http.StatusUnprocessableEntity)
		default:
			jsonError(w, "failed to read document: "+err.Error(), http.StatusBadRequest)
		}
		return
	}

	out, err := tree.JSON()
	if err != nil {
		s.log.Error("encode tree", "doc_id", docID, "error", err)
		jsonError(w, "failed to encode tree", http.StatusInternalServerError)
		return
	}

	s.log.Debug("parsed document", "doc_id", docID, "nodes", len(tree.AllNodeIDs()))
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(out))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
