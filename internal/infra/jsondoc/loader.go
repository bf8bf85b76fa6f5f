package jsondoc

import (
	"errors"
	"io/fs"
	"os"

	"github.com/anujrohit1/pubfilter/internal/app/jsonvalue"
	"github.com/anujrohit1/pubfilter/internal/domain"
	"github.com/anujrohit1/pubfilter/internal/ports"
)

// Loader reads JSON documents from the local filesystem.
type Loader struct {
	readFile func(string) ([]byte, error)
}

type Option func(*Loader)

// WithReadFile swaps the file reader; useful for tests.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(l *Loader) { l.readFile = fn }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{readFile: os.ReadFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.DocumentLoader = (*Loader)(nil)

// LoadDocument reads the whole file and parses it. The file is closed before
// this returns.
func (l *Loader) LoadDocument(path string) (domain.Document, error) {
	b, err := l.readFile(path)
	if err != nil {
		kind := domain.KindReadFailed
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindFileNotFound
		}
		return domain.Document{}, &domain.OpError{
			Op:   "jsondoc.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	doc, err := jsonvalue.Parse(b)
	if err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "jsondoc.parse",
			Kind: domain.KindInvalidJSON,
			Path: path,
			Err:  err,
		}
	}
	return doc, nil
}
