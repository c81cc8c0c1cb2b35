package postgres

import (
	"context"
	"fmt"

	"github.com/dipperr/foodflow/internal/domain/estoque"
	"github.com/dipperr/foodflow/internal/domain/painel"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

var _ repository.PainelRepository = (*PainelRepo)(nil)

// PainelRepo consultas de leitura do dashboard. Entrega as linhas
// desnormalizadas já com os dados do produto anexados; a agregação é toda do
// domínio.
type PainelRepo struct {
	q Querier
}

// NewPainelRepository constrói o adaptador de leitura do painel.
func NewPainelRepository(q Querier) *PainelRepo {
	return &PainelRepo{q: q}
}

// ListarMovimentosValorados junta o diário com o cadastro de produtos. O
// histórico vem inteiro: a flag cmv do produto acompanha a linha e só pesa
// dentro dos agregados de CMV; movimentação sem classificação sai com o
// rótulo padrão.
func (r *PainelRepo) ListarMovimentosValorados(ctx context.Context, empresaID string) ([]painel.MovimentoValorado, error) {
	query := `
		SELECT m.operacao, COALESCE(m.classificacao, $2), m.data_movimentacao, p.nome,
			m.quantidade, m.preco_movimentacao, p.preco_unidade, p.categorias, p.cmv
		FROM movimentacao m
		JOIN produtos p ON p.id = m.id_produto AND p.empresa_id = m.empresa_id
		WHERE m.empresa_id = $1
		ORDER BY m.data_movimentacao`
	rows, err := r.q.Query(ctx, query, empresaID, painel.SemClassificacao)
	if err != nil {
		return nil, fmt.Errorf("list movimentos valorados: %w", err)
	}
	defer rows.Close()

	var movs []painel.MovimentoValorado
	for rows.Next() {
		var m painel.MovimentoValorado
		var operacao string
		if err := rows.Scan(
			&operacao, &m.Classificacao, &m.Data, &m.NomeProduto,
			&m.Quantidade, &m.PrecoMovimentacao, &m.PrecoUnidade, &m.Categorias, &m.CMV,
		); err != nil {
			return nil, fmt.Errorf("scan movimento valorado: %w", err)
		}
		// Linha com operação fora do vocabulário é dado legado; fica de fora
		// em vez de derrubar o painel inteiro.
		op, err := estoque.ParseOperacao(operacao)
		if err != nil {
			continue
		}
		m.Operacao = op
		movs = append(movs, m)
	}
	return movs, rows.Err()
}

// ListarProdutosResumo devolve a fatia de produtos usada na valoração.
func (r *PainelRepo) ListarProdutosResumo(ctx context.Context, empresaID string) ([]painel.ProdutoResumo, error) {
	query := `
		SELECT nome, quantidade, estoque_minimo, preco_unidade, categorias
		FROM produtos WHERE empresa_id = $1`
	rows, err := r.q.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list produtos resumo: %w", err)
	}
	defer rows.Close()

	var produtos []painel.ProdutoResumo
	for rows.Next() {
		var p painel.ProdutoResumo
		if err := rows.Scan(&p.Nome, &p.Quantidade, &p.EstoqueMinimo, &p.PrecoUnidade, &p.Categorias); err != nil {
			return nil, fmt.Errorf("scan produto resumo: %w", err)
		}
		produtos = append(produtos, p)
	}
	return produtos, rows.Err()
}
