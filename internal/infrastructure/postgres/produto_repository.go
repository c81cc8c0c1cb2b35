package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const colunasProduto = `id, empresa_id, nome, unidade, quantidade, estoque_minimo,
		preco_unidade, cmv, categorias, fornecedores, criado_em, atualizado_em`

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Criar persiste um produto novo.
func (r *ProdutoRepo) Criar(ctx context.Context, p *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, empresa_id, nome, unidade, quantidade, estoque_minimo,
			preco_unidade, cmv, categorias, fornecedores, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.EmpresaID, p.Nome, p.Unidade, p.Quantidade, p.EstoqueMinimo,
		p.PrecoUnidade, p.CMV, p.Categorias, p.Fornecedores, p.CriadoEm, p.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// BuscarPorID busca um produto da empresa.
func (r *ProdutoRepo) BuscarPorID(ctx context.Context, empresaID, id string) (*entity.Produto, error) {
	query := `SELECT ` + colunasProduto + ` FROM produtos WHERE empresa_id = $1 AND id = $2`
	return r.buscarUm(ctx, query, empresaID, id)
}

// BuscarParaAtualizar busca com SELECT FOR UPDATE para serializar lançamentos
// concorrentes do mesmo produto. Só faz sentido dentro de uma transação.
func (r *ProdutoRepo) BuscarParaAtualizar(ctx context.Context, empresaID, id string) (*entity.Produto, error) {
	query := `SELECT ` + colunasProduto + ` FROM produtos WHERE empresa_id = $1 AND id = $2 FOR UPDATE`
	return r.buscarUm(ctx, query, empresaID, id)
}

func (r *ProdutoRepo) buscarUm(ctx context.Context, query string, args ...any) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.EmpresaID, &p.Nome, &p.Unidade, &p.Quantidade, &p.EstoqueMinimo,
		&p.PrecoUnidade, &p.CMV, &p.Categorias, &p.Fornecedores, &p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// ListarPorEmpresa devolve os produtos da empresa em ordem alfabética.
func (r *ProdutoRepo) ListarPorEmpresa(ctx context.Context, empresaID string) ([]*entity.Produto, error) {
	query := `SELECT ` + colunasProduto + ` FROM produtos WHERE empresa_id = $1 ORDER BY nome`
	rows, err := r.q.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var produtos []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(
			&p.ID, &p.EmpresaID, &p.Nome, &p.Unidade, &p.Quantidade, &p.EstoqueMinimo,
			&p.PrecoUnidade, &p.CMV, &p.Categorias, &p.Fornecedores, &p.CriadoEm, &p.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		produtos = append(produtos, &p)
	}
	return produtos, rows.Err()
}

// Atualizar grava os campos de cadastro. Quantidade fica de fora: só muda
// via AtualizarQuantidade, dentro de uma transação de lançamento.
func (r *ProdutoRepo) Atualizar(ctx context.Context, p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $3, unidade = $4, estoque_minimo = $5, preco_unidade = $6,
			cmv = $7, categorias = $8, fornecedores = $9, atualizado_em = $10
		WHERE empresa_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		p.EmpresaID, p.ID, p.Nome, p.Unidade, p.EstoqueMinimo, p.PrecoUnidade,
		p.CMV, p.Categorias, p.Fornecedores, p.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// AtualizarQuantidade grava o nível de estoque projetado.
func (r *ProdutoRepo) AtualizarQuantidade(ctx context.Context, empresaID, id string, quantidade decimal.Decimal) error {
	query := `UPDATE produtos SET quantidade = $3, atualizado_em = now() WHERE empresa_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query, empresaID, id, quantidade)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Remover apaga um produto da empresa.
func (r *ProdutoRepo) Remover(ctx context.Context, empresaID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE empresa_id = $1 AND id = $2`, empresaID, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
