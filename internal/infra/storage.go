package infra

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var dataURLRe = regexp.MustCompile(`^data:(image/\w+);base64,`)

// FotoStorage persists client photos to local disk and maps them to public
// /uploads/ URLs. Pass-through I/O only — no resizing, no validation beyond
// the data-URL prefix.
type FotoStorage struct {
	dir       string
	publicURL string
}

func NewFotoStorage(dir, publicURL string) *FotoStorage {
	return &FotoStorage{dir: dir, publicURL: strings.TrimRight(publicURL, "/")}
}

// EsDataURL reports whether the value is an inline base64 image payload
// rather than an already-stored URL.
func EsDataURL(v string) bool { return dataURLRe.MatchString(v) }

// Guardar decodes a data:image base64 payload and writes it under the upload
// dir, returning the public URL to persist on the client row.
func (s *FotoStorage) Guardar(dataURL, clienteID string) (string, error) {
	m := dataURLRe.FindStringSubmatch(dataURL)
	if m == nil {
		return "", fmt.Errorf("payload de imagen no reconocido")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[len(m[0]):])
	if err != nil {
		return "", fmt.Errorf("base64 inválido: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	suffix := clienteID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	name := fmt.Sprintf("client_%d_%s.jpg", time.Now().UnixMilli(), suffix)
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", err
	}
	return s.publicURL + "/" + name, nil
}

// Existe checks a stored local URL against disk. External URLs are assumed
// valid; local paths whose file is gone report false so callers can null
// out stale references.
func (s *FotoStorage) Existe(fotoURL string) bool {
	if !strings.HasPrefix(fotoURL, s.publicURL+"/") {
		return true
	}
	name := strings.TrimPrefix(fotoURL, s.publicURL+"/")
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(name)))
	return err == nil
}
