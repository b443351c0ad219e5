package document

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultMaxSize caps how many bytes file and object-store loaders read.
const DefaultMaxSize int64 = 10 << 20

// Loader constructs the document a Lazy holder serves.
type Loader interface {
	Load(ctx context.Context, name string) (*Document, error)
}

// LoaderFunc adapts an ordinary function to Loader.
type LoaderFunc func(ctx context.Context, name string) (*Document, error)

func (f LoaderFunc) Load(ctx context.Context, name string) (*Document, error) { return f(ctx, name) }

// Static returns a loader producing a document with fixed content.
func Static(content string) Loader {
	return LoaderFunc(func(_ context.Context, name string) (*Document, error) {
		return &Document{Name: name, Content: content, LoadedAt: time.Now()}, nil
	})
}

// FileLoader reads documents from a directory on local disk. Names are
// resolved inside the directory; names that would escape it are rejected.
type FileLoader struct {
	dir     string
	maxSize int64
}

// NewFileLoader creates a loader rooted at dir.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir, maxSize: DefaultMaxSize}
}

func (l *FileLoader) Load(ctx context.Context, name string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" || !filepath.IsLocal(name) {
		return nil, ErrInvalidName
	}

	root, err := os.OpenRoot(l.dir)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrLoadFailed, err)
	}
	defer f.Close()

	content, err := readLimited(f, l.maxSize)
	if err != nil {
		return nil, err
	}
	return &Document{Name: name, Content: content, LoadedAt: time.Now()}, nil
}

// readLimited reads at most limit bytes from r, failing with ErrTooLarge beyond it.
func readLimited(r io.Reader, limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", errors.Join(ErrLoadFailed, err)
	}
	if int64(len(data)) > limit {
		return "", ErrTooLarge
	}
	return string(data), nil
}
