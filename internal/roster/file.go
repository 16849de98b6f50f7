package roster

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matheus3301/dmsync/internal/store"
	"gopkg.in/yaml.v3"
)

// FileSource reads the roster from a YAML file:
//
//	users:
//	  - id: alice
//	    displayName: Alice
//	    avatarUri: https://example.com/a.png
//
// A missing file is an empty roster.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path on every fetch.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Users(context.Context) ([]store.User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var doc struct {
		Users []store.User `yaml:"users"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", s.path, err)
	}
	return doc.Users, nil
}
