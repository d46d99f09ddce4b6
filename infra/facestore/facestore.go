// Package facestore keeps one reference image per account number under a
// dedicated directory, named <number>.jpg the way the enrollment utility
// writes them.
package facestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gvbank/teller/pkg/domain"
)

// Dir implements repository.FaceReferences over a directory of image files.
type Dir struct {
	root string
}

// New creates the reference store rooted at dir, creating the directory
// when absent.
func New(dir string) (*Dir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create face directory %s: %w", dir, err)
	}
	return &Dir{root: dir}, nil
}

func (d *Dir) path(number int64) string {
	return filepath.Join(d.root, strconv.FormatInt(number, 10)+".jpg")
}

// Load returns the stored reference image for the account or
// domain.ErrNoReference.
func (d *Dir) Load(number int64) ([]byte, error) {
	image, err := os.ReadFile(d.path(number))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: account %d", domain.ErrNoReference, number)
	}
	if err != nil {
		return nil, fmt.Errorf("read face reference for account %d: %w", number, err)
	}
	return image, nil
}

// Store saves image as the account's reference. References are written
// once at enrollment and never updated by this system.
func (d *Dir) Store(number int64, image []byte) error {
	if err := os.WriteFile(d.path(number), image, 0o644); err != nil {
		return fmt.Errorf("store face reference for account %d: %w", number, err)
	}
	return nil
}

// Exists reports whether the account already has a reference on file.
// The enrollment utility uses it to refuse re-enrollment.
func (d *Dir) Exists(number int64) bool {
	_, err := os.Stat(d.path(number))
	return err == nil
}
