package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

// ErrTooLarge is returned when a resume exceeds the loader's size limit.
var ErrTooLarge = errors.New("resume file is too large")

// Loader reads resumes from local paths or http(s) URLs and extracts text.
type Loader struct {
	client   *http.Client
	maxBytes int64
	// resolve maps a stored URI onto a local path; "" means not local.
	resolve func(uri string) string
}

type LoaderOption func(*Loader)

func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) { l.client = c }
}

func WithMaxBytes(n int64) LoaderOption {
	return func(l *Loader) { l.maxBytes = n }
}

// WithResolver lets URIs served by this process be read straight from disk.
func WithResolver(resolve func(uri string) string) LoaderOption {
	return func(l *Loader) { l.resolve = resolve }
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		client:   &http.Client{Timeout: 30 * time.Second},
		maxBytes: 15 << 20,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Fetch returns the raw resume bytes and a file name usable for format detection.
func (l *Loader) Fetch(ctx context.Context, location string) (string, []byte, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", nil, errors.New("empty resume location")
	}
	if l.resolve != nil {
		if p := l.resolve(location); p != "" {
			location = p
		}
	}

	u, err := url.Parse(location)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return l.download(ctx, u)
	}

	f, err := os.Open(location)
	if err != nil {
		return "", nil, fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()
	data, err := l.readAtMost(f)
	if err != nil {
		return "", nil, err
	}
	return location, data, nil
}

// Text fetches the resume and extracts its plain text.
func (l *Loader) Text(ctx context.Context, location string) (string, error) {
	name, data, err := l.Fetch(ctx, location)
	if err != nil {
		return "", err
	}
	return ParseText(name, data)
}

func (l *Loader) download(ctx context.Context, u *url.URL) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("download resume: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", nil, fmt.Errorf("download resume: http %d", resp.StatusCode)
	}
	data, err := l.readAtMost(resp.Body)
	if err != nil {
		return "", nil, err
	}
	return path.Base(u.Path), data, nil
}

func (l *Loader) readAtMost(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}
