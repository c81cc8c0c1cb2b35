package repository

import (
	"context"

	"github.com/dipperr/foodflow/internal/domain/painel"
)

// PainelRepository define as consultas de leitura do dashboard. As
// implementações são read-only: entregam linhas desnormalizadas e deixam a
// agregação para o pacote painel.
type PainelRepository interface {
	// ListarMovimentosValorados devolve o histórico da empresa com nome,
	// preço de referência e categorias do produto anexados a cada linha.
	ListarMovimentosValorados(ctx context.Context, empresaID string) ([]painel.MovimentoValorado, error)

	// ListarProdutosResumo devolve a fatia de produtos usada na valoração
	// de estoque.
	ListarProdutosResumo(ctx context.Context, empresaID string) ([]painel.ProdutoResumo, error)
}
