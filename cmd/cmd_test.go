package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsmostafa/pageindex/internal/pageindex"
)

const sample = `# Introduction
Introductory text.

## Background
Background details.

## Goals
Goal details.

# Methods
Method details.

## Experiment
Experiment details.
`

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with plain output and fresh flag values.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	docID, withChildren = "", false
	exportFormat, exportOutput, importFormat = formatJSON, "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--no-color", "--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestOutlineCommand(t *testing.T) {
	path := writeSample(t, "guide.md", sample)

	out, err := run(t, "", "outline", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[1] Introduction\n  [1.1] Background\n  [1.2] Goals\n[2] Methods\n  [2.1] Experiment\n"
	if out != want {
		t.Errorf("outline = %q, want %q", out, want)
	}
}

func TestOutlineFromStdin(t *testing.T) {
	out, err := run(t, "# Only Section\nSome text.", "outline", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[1] Only Section\n" {
		t.Errorf("outline = %q", out)
	}
}

func TestIDsCommand(t *testing.T) {
	path := writeSample(t, "guide.md", sample)

	out, err := run(t, "", "ids", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n1.1\n1.2\n2\n2.1\n" {
		t.Errorf("ids = %q", out)
	}
}

func TestNodeCommand(t *testing.T) {
	path := writeSample(t, "guide.md", sample)

	t.Run("own text", func(t *testing.T) {
		out, err := run(t, "", "node", path, "2.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out, "Methods > Experiment\n[2.1] Experiment\n") {
			t.Errorf("unexpected output:\n%s", out)
		}
		if !strings.Contains(out, "Experiment details.") {
			t.Errorf("expected body:\n%s", out)
		}
	})

	t.Run("with children", func(t *testing.T) {
		out, err := run(t, "", "node", "--children", path, "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "## Goals\n\nGoal details.") {
			t.Errorf("expected nested sections:\n%s", out)
		}
	})

	t.Run("missing node", func(t *testing.T) {
		_, err := run(t, "", "node", path, "9.9")
		if err == nil || !strings.Contains(err.Error(), `node "9.9" not found in guide`) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestChildrenCommand(t *testing.T) {
	path := writeSample(t, "guide.md", sample)

	out, err := run(t, "", "children", path, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[1.1] Background\n[1.2] Goals\n" {
		t.Errorf("children = %q", out)
	}

	out, err = run(t, "", "children", path, "1.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no children, got %q", out)
	}
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "", "outline", filepath.Join(t.TempDir(), "nope.md"))
	if !errors.Is(err, pageindex.ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}
}

func TestExportImport(t *testing.T) {
	path := writeSample(t, "guide.md", sample)

	for _, format := range []string{formatJSON, formatYAML} {
		t.Run(format, func(t *testing.T) {
			target := filepath.Join(t.TempDir(), "tree."+format)

			if _, err := run(t, "", "export", "--format", format, "--doc-id", "manual", "-o", target, path); err != nil {
				t.Fatalf("export: %v", err)
			}

			out, err := run(t, "", "import", target)
			if err != nil {
				t.Fatalf("import: %v", err)
			}
			if !strings.Contains(out, "Doc: manual") {
				t.Errorf("expected doc id in summary:\n%s", out)
			}
			if !strings.Contains(out, "  [2.1] Experiment") {
				t.Errorf("expected outline after summary:\n%s", out)
			}
		})
	}
}

func TestExportStdout(t *testing.T) {
	path := writeSample(t, "guide.md", sample)

	out, err := run(t, "", "export", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree, err := pageindex.UnmarshalTree([]byte(out))
	if err != nil {
		t.Fatalf("export output is not a tree: %v", err)
	}
	if tree.DocID != "guide" || tree.Title != "Introduction" {
		t.Errorf("unexpected tree %q / %q", tree.DocID, tree.Title)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := writeSample(t, "guide.md", sample)

	if _, err := run(t, "", "export", "--format", "xml", path); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"tree.json": formatJSON,
		"tree.YAML": formatYAML,
		"tree.yml":  formatYAML,
		"-":         formatJSON,
	}
	for path, want := range tests {
		if got := formatFromPath(path); got != want {
			t.Errorf("formatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
