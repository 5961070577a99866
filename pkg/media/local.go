package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// RoutePrefix is the path under which the HTTP layer serves the upload dir.
const RoutePrefix = "/uploads"

var allowed = map[string]Kind{
	"application/pdf": KindDocument,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": KindDocument,
	"image/jpeg": KindImage,
	"image/png":  KindImage,
	"image/gif":  KindImage,
	"image/webp": KindImage,
}

// Local stores files in a directory on disk.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, publicBaseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

func (l *Local) Dir() string { return l.dir }

// Save sniffs the content type, rejects anything that is not a document or an
// image and writes the file under a random name.
func (l *Local) Save(_ context.Context, originalName string, data []byte) (Object, error) {
	if len(data) == 0 {
		return Object{}, ErrEmptyFile
	}
	mt := mimetype.Detect(data)
	kind, ct := classify(mt)
	if kind == "" {
		return Object{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	name := uuid.NewString() + mt.Extension()
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return Object{}, fmt.Errorf("write upload: %w", err)
	}
	return Object{
		URI:          l.baseURL + RoutePrefix + "/" + name,
		OriginalName: filepath.Base(originalName),
		ContentType:  ct,
		Kind:         kind,
		Size:         int64(len(data)),
	}, nil
}

func (l *Local) Delete(_ context.Context, uri string) error {
	p := l.LocalPath(uri)
	if p == "" {
		return nil
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// LocalPath maps a URI produced by Save back to its file, or returns "" for
// URIs this store does not own.
func (l *Local) LocalPath(uri string) string {
	rest, ok := strings.CutPrefix(uri, l.baseURL+RoutePrefix+"/")
	if !ok {
		rest, ok = strings.CutPrefix(uri, RoutePrefix+"/")
	}
	if !ok || rest == "" || strings.ContainsAny(rest, `/\`) || rest == ".." {
		return ""
	}
	return filepath.Join(l.dir, rest)
}

func classify(mt *mimetype.MIME) (Kind, string) {
	for m := mt; m != nil; m = m.Parent() {
		if kind, ok := allowed[m.String()]; ok {
			return kind, m.String()
		}
	}
	return "", ""
}
