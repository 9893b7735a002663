package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
)

// writeTimelineDocument serializes the timeline as an array-of-records JSON
// document. Encoding is fully deterministic: identical input produces a
// byte-identical file across runs.
func writeTimelineDocument(entries []schema.DriverSeasonEntry, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := writeTimelineJSON(file, entries); err != nil {
		return err
	}
	return file.Close()
}

// writeTimelineJSON encodes the records with the indentation the
// visualization layer expects. An empty timeline still yields a valid
// empty array, never "null".
func writeTimelineJSON(w io.Writer, entries []schema.DriverSeasonEntry) error {
	if entries == nil {
		entries = []schema.DriverSeasonEntry{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode timeline JSON: %w", err)
	}
	return nil
}
