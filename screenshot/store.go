package screenshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/viant/afs"
)

const (
	// Extension is the file extension of stored captures.
	Extension = ".png"
	// MimeType is the media type of stored captures.
	MimeType = "image/png"
	// URIPrefix addresses stored captures as resources.
	URIPrefix = "adb://screenshots/"
	prefix    = "screenshot-"
)

// ErrNotFound is returned for names that do not resolve to a stored capture.
var ErrNotFound = errors.New("screenshot not found")

var timestampReplacer = strings.NewReplacer(":", "-", ".", "-")

// Store keeps captures in a local scratch directory.
type Store struct {
	dir string
	fs  afs.Service
	now func() time.Time
}

// Dir returns the absolute scratch directory.
func (s *Store) Dir() string {
	return s.dir
}

// Ensure creates the scratch directory if absent.
func (s *Store) Ensure(ctx context.Context) error {
	exists, err := s.fs.Exists(ctx, s.dir)
	if err != nil {
		return fmt.Errorf("failed to check scratch dir %v: %w", s.dir, err)
	}
	if exists {
		return nil
	}
	if err = s.fs.Create(ctx, s.dir, os.ModePerm, true); err != nil {
		return fmt.Errorf("failed to create scratch dir %v: %w", s.dir, err)
	}
	return nil
}

// NewName returns a filesystem safe, timestamp derived capture name.
func (s *Store) NewName() string {
	timestamp := timestampReplacer.Replace(s.now().UTC().Format("2006-01-02T15:04:05.000Z"))
	return prefix + timestamp + "-" + uuid.New().String()[:8] + Extension
}

// Path resolves name inside the scratch directory.
func (s *Store) Path(name string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %v", ErrNotFound, name)
	}
	return filepath.Join(s.dir, name), nil
}

// Size returns the size of a stored capture, or ErrNotFound.
func (s *Store) Size(ctx context.Context, name string) (int64, error) {
	location, err := s.locate(ctx, name)
	if err != nil {
		return 0, err
	}
	object, err := s.fs.Object(ctx, location)
	if err != nil {
		return 0, err
	}
	return object.Size(), nil
}

// Read returns the bytes of a stored capture, or ErrNotFound.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	location, err := s.locate(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.fs.DownloadWithURL(ctx, location)
}

// Write replaces the content of a capture.
func (s *Store) Write(ctx context.Context, name string, data []byte) error {
	location, err := s.Path(name)
	if err != nil {
		return err
	}
	return s.fs.Upload(ctx, location, 0o644, bytes.NewReader(data))
}

// Delete removes a stored capture.
func (s *Store) Delete(ctx context.Context, name string) error {
	location, err := s.locate(ctx, name)
	if err != nil {
		return err
	}
	return s.fs.Delete(ctx, location)
}

// List returns stored capture names, oldest first. Other files sharing the
// directory are ignored.
func (s *Store) List(ctx context.Context) ([]string, error) {
	objects, err := s.fs.List(ctx, s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		name := object.Name()
		if !Owned(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Prune deletes the oldest captures so that at most keep remain.
// A non-positive keep disables pruning.
func (s *Store) Prune(ctx context.Context, keep int) ([]string, error) {
	if keep <= 0 {
		return nil, nil
	}
	names, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) <= keep {
		return nil, nil
	}
	removed := names[:len(names)-keep]
	for _, name := range removed {
		if err = s.fs.Delete(ctx, filepath.Join(s.dir, name)); err != nil {
			return nil, fmt.Errorf("failed to delete %v: %w", name, err)
		}
	}
	return removed, nil
}

func (s *Store) locate(ctx context.Context, name string) (string, error) {
	location, err := s.Path(name)
	if err != nil {
		return "", err
	}
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("%w: %v", ErrNotFound, name)
	}
	return location, nil
}

// URI returns the resource URI of a stored capture.
func URI(name string) string {
	return URIPrefix + name
}

// NameFromURI returns the capture name addressed by uri.
func NameFromURI(uri string) (string, bool) {
	name, ok := strings.CutPrefix(uri, URIPrefix)
	if !ok || !Owned(name) {
		return "", false
	}
	return name, true
}

// ValidName reports whether name is a plain file name without path elements.
func ValidName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// Owned reports whether name is a capture written by this store.
func Owned(name string) bool {
	return ValidName(name) && strings.HasPrefix(name, prefix) && strings.HasSuffix(name, Extension)
}

// New creates a store rooted at dir.
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid scratch dir %v: %w", dir, err)
	}
	return &Store{dir: abs, fs: afs.New(), now: time.Now}, nil
}

// DefaultDir returns the default scratch directory.
func DefaultDir() string {
	return filepath.Join(os.TempDir(), "mcp-adb")
}
