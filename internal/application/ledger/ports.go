package ledger

import (
	"context"

	"github.com/dipperr/foodflow/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados àquela tx. Garante que a atualização do nível de
// estoque e a gravação do lançamento aconteçam juntas ou não aconteçam.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
