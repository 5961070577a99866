package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseTextDocx(t *testing.T) {
	data := docx(t, `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Go</w:t><w:tab/><w:t>SQL</w:t></w:r></w:p></w:body></w:document>`)
	text, err := ParseText("cv.docx", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Go")
	assert.Contains(t, text, "SQL")
}

func TestParseTextPlain(t *testing.T) {
	text, err := ParseText("cv.txt", []byte("  Go\t\tdeveloper\n\n\nSQL  "))
	require.NoError(t, err)
	assert.Equal(t, "Go developer\nSQL", text)

	text, err = ParseText("cv", []byte("plain text resume"))
	require.NoError(t, err)
	assert.Equal(t, "plain text resume", text)
}

func TestParseTextUnsupported(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	_, err := ParseText("photo.png", png)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestMatchSkills(t *testing.T) {
	rep := MatchSkills("Backend developer. Golang, PostgreSQL, REST API.", []string{"go", "postgres", "docker", "Go", " "})
	assert.Equal(t, []string{"go", "postgres"}, rep.Matched)
	assert.Equal(t, []string{"docker"}, rep.Missing)
	assert.Equal(t, 66.67, rep.MatchPercentage)

	rep = MatchSkills("anything", nil)
	assert.Equal(t, 0.0, rep.MatchPercentage)
	assert.NotNil(t, rep.Matched)
}

func TestMatchSkillsToleratesTypos(t *testing.T) {
	rep := MatchSkills("Ran PostgreSQL, ReactJS and Kubernetess clusters; javascript developer",
		[]string{"postgres", "react", "kubernetes", "java"})
	assert.Equal(t, []string{"postgres", "react", "kubernetes"}, rep.Matched)
	assert.Equal(t, []string{"java"}, rep.Missing)
	assert.Equal(t, 75.0, rep.MatchPercentage)
}

func TestLoaderLocalFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv.txt"), []byte("Go and SQL"), 0o600))

	l := NewLoader(WithResolver(func(uri string) string {
		if !strings.HasPrefix(uri, "/uploads/") {
			return ""
		}
		return filepath.Join(dir, strings.TrimPrefix(uri, "/uploads/"))
	}))
	text, err := l.Text(context.Background(), "/uploads/cv.txt")
	require.NoError(t, err)
	assert.Equal(t, "Go and SQL", text)

	_, err = l.Text(context.Background(), "/uploads/missing.txt")
	assert.Error(t, err)
}

func TestLoaderDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/cv.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("Kubernetes expert"))
	}))
	defer srv.Close()

	l := NewLoader()
	text, err := l.Text(context.Background(), srv.URL+"/files/cv.txt")
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes expert", text)

	_, err = l.Text(context.Background(), srv.URL+"/files/nope.txt")
	assert.Error(t, err)
}

func TestLoaderTooLarge(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(p, bytes.Repeat([]byte("a"), 64), 0o600))

	_, _, err := NewLoader(WithMaxBytes(16)).Fetch(context.Background(), p)
	assert.ErrorIs(t, err, ErrTooLarge)
}
