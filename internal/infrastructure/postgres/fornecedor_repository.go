package postgres

import (
	"context"
	"fmt"

	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação do porto FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de persistência de fornecedores.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Criar persiste um fornecedor.
func (r *FornecedorRepo) Criar(ctx context.Context, f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (id, empresa_id, nome, nome_vendedor, telefone, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, f.ID, f.EmpresaID, f.Nome, f.NomeVendedor, f.Telefone, f.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// ListarPorEmpresa devolve os fornecedores da empresa em ordem alfabética.
func (r *FornecedorRepo) ListarPorEmpresa(ctx context.Context, empresaID string) ([]*entity.Fornecedor, error) {
	query := `
		SELECT id, empresa_id, nome, nome_vendedor, telefone, criado_em
		FROM fornecedores WHERE empresa_id = $1 ORDER BY nome`
	rows, err := r.q.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()

	var fornecedores []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.EmpresaID, &f.Nome, &f.NomeVendedor, &f.Telefone, &f.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		fornecedores = append(fornecedores, &f)
	}
	return fornecedores, rows.Err()
}

// Atualizar grava nome, vendedor e telefone.
func (r *FornecedorRepo) Atualizar(ctx context.Context, f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores SET nome = $3, nome_vendedor = $4, telefone = $5
		WHERE empresa_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query, f.EmpresaID, f.ID, f.Nome, f.NomeVendedor, f.Telefone)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Remover apaga um fornecedor da empresa.
func (r *FornecedorRepo) Remover(ctx context.Context, empresaID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM fornecedores WHERE empresa_id = $1 AND id = $2`, empresaID, id)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
