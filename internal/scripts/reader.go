package scripts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedType is wrapped by ReadError for files that are not .txt/.md.
var ErrUnsupportedType = errors.New("unsupported script file type")

// ReadError reports a script file that could not be read as text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read script %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

var allowedExts = map[string]struct{}{
	".txt": {},
	".md":  {},
}

// ReadAsText reads a .txt or .md file as text. UTF-8 is assumed unless a
// byte order mark says UTF-16; a UTF-8 BOM is dropped.
func ReadAsText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := allowedExts[ext]; !ok {
		return "", &ReadError{Path: path, Err: ErrUnsupportedType}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	text, err := DecodeText(raw)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return text, nil
}

// DecodeText converts file bytes to a string, honoring a leading BOM.
func DecodeText(raw []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	return strings.ReplaceAll(string(out), "\r\n", "\n"), nil
}
