package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the boxfile and its autosave shadow.
type Store interface {
	ReadBoxfile() (string, error)
	WriteBoxfile(text string) error
	WriteShadow(text string) error
	RemoveShadow() error
}

// FileStore keeps a boxfile next to the page image it describes.
type FileStore struct {
	ImagePath string // Page image the boxes were drawn on
	BoxPath   string // Boxfile, the image path with a .box extension
	Suffix    string // Appended to BoxPath for the autosave shadow
}

// NewFileStore returns a store for the boxfile belonging to imagePath.
// An empty suffix selects the default shadow suffix.
func NewFileStore(imagePath, suffix string) *FileStore {
	if suffix == "" {
		suffix = DefaultConfig().ShadowSuffix
	}
	return &FileStore{
		ImagePath: imagePath,
		BoxPath:   BoxPath(imagePath),
		Suffix:    suffix,
	}
}

// BoxPath returns the boxfile path for an image: the image path with its
// extension replaced by .box.
func BoxPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".box"
}

// ShadowPath returns the autosave path.
func (s *FileStore) ShadowPath() string {
	return s.BoxPath + s.Suffix
}

// ReadBoxfile returns the boxfile contents. Both the image and the boxfile
// must exist.
func (s *FileStore) ReadBoxfile() (string, error) {
	if _, err := os.Stat(s.ImagePath); err != nil {
		return "", fmt.Errorf("cannot find image %s: %w", s.ImagePath, err)
	}
	data, err := os.ReadFile(s.BoxPath)
	if err != nil {
		return "", fmt.Errorf("cannot read boxfile %s: %w", s.BoxPath, err)
	}
	return string(data), nil
}

func (s *FileStore) WriteBoxfile(text string) error {
	return os.WriteFile(s.BoxPath, []byte(text), 0644)
}

func (s *FileStore) WriteShadow(text string) error {
	return os.WriteFile(s.ShadowPath(), []byte(text), 0644)
}

// RemoveShadow deletes the autosave file if there is one.
func (s *FileStore) RemoveShadow() error {
	err := os.Remove(s.ShadowPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// nopStore is used when no Store is configured.
type nopStore struct{}

func (nopStore) ReadBoxfile() (string, error) { return "", errors.New("no store configured") }
func (nopStore) WriteBoxfile(string) error    { return nil }
func (nopStore) WriteShadow(string) error     { return nil }
func (nopStore) RemoveShadow() error          { return nil }
