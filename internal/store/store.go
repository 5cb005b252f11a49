// Package store persists datasets, validation reports, and authored responses
// as JSON files, plus the generated prompt pack as plain text.
package store

import (
	"encoding/json"
	"os"

	"goreview/domain/review"
	"goreview/internal/errors"
)

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.StoreError(path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.StoreError(path, err)
	}
	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.StoreError(path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.StoreError(path, err)
	}
	return nil
}

// SaveDataset writes an extracted dataset, round-trip safe for LoadDataset.
func SaveDataset(path string, ds *review.Dataset) error {
	return writeJSON(path, ds)
}

// LoadDataset reads a dataset previously written by SaveDataset.
func LoadDataset(path string) (*review.Dataset, error) {
	ds := &review.Dataset{}
	if err := readJSON(path, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// SaveReport writes a validation report.
func SaveReport(path string, rep *review.Report) error {
	return writeJSON(path, rep)
}

// LoadReport reads a validation report previously written by SaveReport.
func LoadReport(path string) (*review.Report, error) {
	rep := &review.Report{}
	if err := readJSON(path, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// LoadResponses reads a section-to-response JSON object authored outside the
// tool.
func LoadResponses(path string) (map[string]string, error) {
	responses := map[string]string{}
	if err := readJSON(path, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// SaveText writes rendered text output such as the prompt pack.
func SaveText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.StoreError(path, err)
	}
	return nil
}
