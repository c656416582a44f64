// Package storage loads JSON documents from disk into the value model.
package storage

import (
	"fmt"
	"os"

	"github.com/jsonlens/jsonlens/internal/model"
)

// Document is a parsed JSON file
type Document struct {
	FilePath string
	Root     *model.Value
}

// LoadDocument reads and parses a JSON file
func LoadDocument(filePath string) (*Document, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	root, err := model.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	return &Document{FilePath: filePath, Root: root}, nil
}

// SaveDocument writes a value to a JSON file in canonical pretty form
func SaveDocument(filePath string, root *model.Value) error {
	text := root.EncodeJSON(true) + "\n"
	if err := os.WriteFile(filePath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// FileExists checks if the document file exists
func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
