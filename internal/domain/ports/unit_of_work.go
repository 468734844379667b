package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// Repositórios usam a transação guardada no contexto quando houver.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
