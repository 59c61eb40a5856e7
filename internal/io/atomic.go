// Package io provides atomic file writes. Output appears under its final
// name only after a write has fully succeeded, so failures never leave a
// partial file behind.
package io

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to path via temp file + rename.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// WriteJSONAtomic writes v as indented JSON to path atomically.
func WriteJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data)
}

// WriteCSVAtomic streams CSV records through write into a temp file and
// renames it over path on success. If write or any flush fails, the temp
// file is removed and path is left untouched.
func WriteCSVAtomic(path string, write func(w *csv.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if err := write(w); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
