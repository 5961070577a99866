package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	pdf "github.com/ledongthuc/pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported resume format: only pdf, docx and txt are allowed")

var (
	reTags     = regexp.MustCompile(`<[^>]+>`)
	reBlanks   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)

// ParseText extracts plain text from a resume. The format is taken from the
// file extension and, when that is missing or unknown, sniffed from content.
func ParseText(filename string, data []byte) (string, error) {
	switch format(filename, data) {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	case ".txt":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func format(filename string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".docx", ".txt":
		return ext
	}
	mt := mimetype.Detect(data)
	switch {
	case mt.Is("application/pdf"):
		return ".pdf"
	case mt.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
		return ".docx"
	case mt.Is("text/plain"):
		return ".txt"
	}
	return ""
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return normalizeWhitespace(reTags.ReplaceAllString(xml, " ")), nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
