package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/domain/entity"
)

// ProdutoRepository define a porta de persistência de Produto.
type ProdutoRepository interface {
	Criar(ctx context.Context, produto *entity.Produto) error
	BuscarPorID(ctx context.Context, empresaID, id string) (*entity.Produto, error)
	// BuscarParaAtualizar lê o produto com SELECT FOR UPDATE. Só faz sentido
	// dentro de uma transação, para serializar lançamentos concorrentes do
	// mesmo produto.
	BuscarParaAtualizar(ctx context.Context, empresaID, id string) (*entity.Produto, error)
	ListarPorEmpresa(ctx context.Context, empresaID string) ([]*entity.Produto, error)
	Atualizar(ctx context.Context, produto *entity.Produto) error
	// AtualizarQuantidade grava o nível de estoque já projetado. A projeção
	// acontece no caso de uso, dentro da mesma transação do lançamento.
	AtualizarQuantidade(ctx context.Context, empresaID, id string, quantidade decimal.Decimal) error
	Remover(ctx context.Context, empresaID, id string) error
}
