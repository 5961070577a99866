package media

import (
	"context"
	"errors"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmptyFile       = errors.New("empty file")
)

type Kind string

const (
	KindDocument Kind = "document"
	KindImage    Kind = "image"
)

// Object describes a stored upload.
type Object struct {
	URI          string `json:"uri"`
	OriginalName string `json:"originalName"`
	ContentType  string `json:"contentType"`
	Kind         Kind   `json:"kind"`
	Size         int64  `json:"size"`
}

// Store keeps uploaded files and hands out public URIs for them.
type Store interface {
	Save(ctx context.Context, originalName string, data []byte) (Object, error)
	Delete(ctx context.Context, uri string) error
}

// Upload is a file received with a request.
type Upload struct {
	Name string
	Data []byte
}
