package repository

import (
	"context"

	"github.com/dipperr/foodflow/internal/domain/entity"
)

// ListaComprasRepository define a porta de persistência das listas de compras.
// Os itens são um documento JSONB dentro da lista; consolidação e totais são
// resolvidos no caso de uso antes de gravar.
type ListaComprasRepository interface {
	Criar(ctx context.Context, lista *entity.ListaCompras) error
	BuscarPorID(ctx context.Context, empresaID, id string) (*entity.ListaCompras, error)
	ListarPorEmpresa(ctx context.Context, empresaID string, somenteAbertas bool) ([]*entity.ListaCompras, error)
	Atualizar(ctx context.Context, lista *entity.ListaCompras) error
	Remover(ctx context.Context, empresaID, id string) error
}
