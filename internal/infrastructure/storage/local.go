package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
)

// LocalStorage grava arquivos em disco sob root
type LocalStorage struct {
	root      string
	publicURL string
}

// NewLocalStorage cria o diretório raiz se necessário
func NewLocalStorage(root, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStorage{root: root, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

var _ ports.FileStorage = (*LocalStorage)(nil)

// Root devolve o diretório servido como arquivos estáticos
func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) Save(ctx context.Context, p string, r io.Reader, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := s.resolve(p)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Escreve em arquivo temporário e renomeia para não expor arquivos parciais
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to move file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Delete(_ context.Context, p string) error {
	if err := os.Remove(s.resolve(p)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) URL(p string) string {
	return s.publicURL + "/" + cleanKey(p)
}

// resolve mantém o caminho dentro de root
func (s *LocalStorage) resolve(p string) string {
	return filepath.Join(s.root, filepath.FromSlash(cleanKey(p)))
}

// cleanKey normaliza o caminho relativo removendo ".." e barras iniciais
func cleanKey(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}
