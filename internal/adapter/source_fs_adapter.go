// Package adapter contains the infrastructure adapters used by the flagstrip
// domain layer: source discovery and I/O, feature configuration and reports.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/flagstrip/internal/model"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
)

// ErrRootNotFound is returned when the processing root does not exist.
var ErrRootNotFound = errors.New("root path does not exist")

// SourceFSAdapter abstracts the filesystem operations the batch relies on, so
// the workflow can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get lists every unit under root whose extension is in extensions.
	// A root that is a single file yields just that file.
	Get(ctx context.Context, root m.Path, extensions []string) ([]m.Unit, error)

	// ReadFile loads a unit's full content.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces a unit's content.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// HashFile returns the content fingerprint of the file currently on disk.
	HashFile(ctx context.Context, path m.Path) (string, error)
}

// skippedDirs are never descended into.
var skippedDirs = map[string]struct{}{
	".git":         {},
	"vendor":       {},
	"node_modules": {},
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of afs.
type LocalSourceFSAdapter struct {
	fs afs.Service
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be wired
// into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: afs.New()}
}

// Get walks root recursively and returns the matching units sorted by path.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, root m.Path, extensions []string) ([]m.Unit, error) {
	rootPath, err := normalizeRootPath(string(root))
	if err != nil {
		return nil, err
	}

	exists, err := a.fs.Exists(ctx, rootPath)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	object, err := a.fs.Object(ctx, rootPath)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[ext] = struct{}{}
	}

	if !object.IsDir() {
		if _, ok := wanted[filepath.Ext(rootPath)]; !ok {
			return []m.Unit{}, nil
		}

		return []m.Unit{newUnit(rootPath, object)}, nil
	}

	units := []m.Unit{}

	var visit storage.OnVisit = func(_ context.Context, _ string, parent string, info os.FileInfo, _ io.Reader) (bool, error) {
		if info.IsDir() || inSkippedDir(parent) {
			return true, nil
		}

		if _, ok := wanted[filepath.Ext(info.Name())]; !ok {
			return true, nil
		}

		units = append(units, newUnit(filepath.Join(rootPath, parent, info.Name()), info))

		return true, nil
	}

	if err := a.fs.Walk(ctx, rootPath, visit); err != nil {
		return nil, fmt.Errorf("walk %s: %w", rootPath, err)
	}

	sort.Slice(units, func(i, j int) bool {
		return units[i].Path < units[j].Path
	})

	return units, nil
}

// ReadFile loads file contents.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	return a.fs.DownloadWithURL(ctx, string(path))
}

// WriteFile replaces file contents with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if perm == 0 {
		perm = 0o644
	}

	return a.fs.Upload(ctx, string(path), perm, bytes.NewReader(content))
}

// HashFile fingerprints the file currently stored at path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	content, err := a.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}

	return HashBytes(content)
}

func newUnit(path string, info os.FileInfo) m.Unit {
	return m.Unit{
		Path: m.Path(path),
		Mode: info.Mode().Perm(),
		Size: info.Size(),
	}
}

func inSkippedDir(parent string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(parent), "/") {
		if _, skip := skippedDirs[segment]; skip {
			return true
		}
	}

	return false
}

func normalizeRootPath(root string) (string, error) {
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(root, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		root = filepath.Join(home, suffix)
	}

	if root == "" {
		root = "."
	}

	return filepath.Abs(root)
}
