package ports

//go:generate mockgen -source=file_storage.go -destination=mocks/file_storage_mock.go -package=mocks

import (
	"context"
	"io"
)

// FileStorage guarda arquivos enviados pelos clientes.
// Paths são relativos (ex.: "uploads/volunteers/x.png"); URL monta o endereço absoluto.
type FileStorage interface {
	Save(ctx context.Context, path string, r io.Reader, contentType string) error
	// Delete não falha quando o arquivo não existe
	Delete(ctx context.Context, path string) error
	URL(path string) string
}
