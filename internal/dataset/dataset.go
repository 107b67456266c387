// Package dataset reads seed verb records and writes expanded verb datasets.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rcliao/verbseed/internal/model"
)

// Load reads seed records from path. The format is chosen by extension:
// .csv and .xlsx are read as spreadsheets, anything else as a JSON array.
func Load(path string) ([]model.VerbRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path, "")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadCSV(f)
	}
	return ReadJSON(f)
}

// ReadJSON decodes a JSON array of seed records.
func ReadJSON(r io.Reader) ([]model.VerbRecord, error) {
	var records []model.VerbRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return records, nil
}

// LoadExpanded reads a dataset previously written by Write.
func LoadExpanded(path string) ([]model.Verb, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var verbs []model.Verb
	if err := json.Unmarshal(data, &verbs); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return verbs, nil
}

// Encode writes verbs as an indented JSON array. Non-ASCII letters are
// written as UTF-8, never as \u escapes.
func Encode(w io.Writer, verbs []model.Verb) error {
	if verbs == nil {
		verbs = []model.Verb{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(verbs)
}

// Write replaces path with the encoded verbs. The file is written to a
// temporary sibling first and renamed into place, so a failed run leaves the
// previous contents intact.
func Write(path string, verbs []model.Verb) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, verbs); err != nil {
		tmp.Close()
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
