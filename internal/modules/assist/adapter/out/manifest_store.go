package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"konkrete/internal/modules/assist/domain"
	assistout "konkrete/internal/modules/assist/port/out"
	apperrors "konkrete/internal/platform/errors"
)

// FileManifestStore reads the assistant manifest from the config home.
// No manifest means the assistant features stay dark.
type FileManifestStore struct {
	basePath string
	path     string
}

func NewFileManifestStore(basePath, manifestName string) assistout.ManifestStore {
	return &FileManifestStore{basePath: basePath, path: filepath.Join(basePath, manifestName)}
}

func (s *FileManifestStore) Load(_ context.Context) (domain.Manifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Manifest{}, apperrors.ErrAssistUnavailable
		}
		return domain.Manifest{}, fmt.Errorf("read assistant manifest: %w", err)
	}
	var manifest domain.Manifest
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifest); err != nil {
		return domain.Manifest{}, fmt.Errorf("decode assistant manifest: %w", err)
	}
	if manifest.Binary == "" {
		return domain.Manifest{}, apperrors.ErrAssistUnavailable
	}
	if !filepath.IsAbs(manifest.Binary) {
		manifest.Binary = filepath.Clean(filepath.Join(s.basePath, manifest.Binary))
	}
	return manifest, nil
}
