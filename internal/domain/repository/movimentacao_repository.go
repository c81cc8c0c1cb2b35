package repository

import (
	"context"
	"time"

	"github.com/dipperr/foodflow/internal/domain/entity"
)

// FiltroMovimentacoes parâmetros de listagem do histórico.
type FiltroMovimentacoes struct {
	ProdutoID string
	De        *time.Time
	Ate       *time.Time
	Limite    int
	Offset    int
}

// MovimentacaoRepository define a porta de persistência do diário de
// movimentações. O diário é append-mostly: lançamentos nunca são reprojetados
// depois de gravados, nem mesmo por edição de quantidade.
type MovimentacaoRepository interface {
	Criar(ctx context.Context, mov *entity.Movimentacao) error
	BuscarPorID(ctx context.Context, empresaID, id string) (*entity.Movimentacao, error)
	BuscarPorChaveIdempotencia(ctx context.Context, empresaID, chave string) (*entity.Movimentacao, error)
	Listar(ctx context.Context, empresaID string, filtro FiltroMovimentacoes) ([]*entity.Movimentacao, error)
	// Atualizar grava classificação, quantidade, preço, validade e
	// informações. Operação, produto e data são imutáveis após o lançamento.
	Atualizar(ctx context.Context, mov *entity.Movimentacao) error
	Remover(ctx context.Context, empresaID, id string) error
}
