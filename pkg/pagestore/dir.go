package pagestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/matzehuels/wikiextract/pkg/cache"
)

// DirStore keeps one JSON file per page. Titles are hashed into file names
// so that any title, including subpage titles with slashes, is a valid
// path.
type DirStore struct {
	dir string
}

// NewDirStore opens a directory store, creating the directory if needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DirStore{dir: dir}, nil
}

// Get reads a page by title.
func (s *DirStore) Get(_ context.Context, title string) (Page, bool, error) {
	data, err := os.ReadFile(s.path(title))
	if os.IsNotExist(err) {
		return Page{}, false, nil
	}
	if err != nil {
		return Page{}, false, err
	}
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return Page{}, false, err
	}
	return p, true, nil
}

// Put writes a page, replacing any previous version.
func (s *DirStore) Put(_ context.Context, p Page) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	path := s.path(p.Title)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Close does nothing.
func (s *DirStore) Close() error { return nil }

func (s *DirStore) path(title string) string {
	hash := cache.Hash([]byte(title))
	return filepath.Join(s.dir, hash[:2], hash[2:]+".json")
}

var _ Store = (*DirStore)(nil)
