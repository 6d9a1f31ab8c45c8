package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"schedge-fetch/internal/quacs"
)

// WriteCoursesJSON serializes the document as pretty-printed UTF-8 JSON
// to w: 2-space indent, non-ASCII kept literal (no \uXXXX escaping).
func WriteCoursesJSON(w io.Writer, doc quacs.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// WriteCoursesJSONFile writes the document to path, creating parent
// directories as needed and overwriting any existing file. No temp-file
// rename: the artifact is a rebuildable cache, a truncated file from a
// crash mid-write just gets regenerated on the next run.
func WriteCoursesJSONFile(path string, doc quacs.Document) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}

	if err := WriteCoursesJSON(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
