package postgres

import (
	"context"
	"fmt"

	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação do porto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador de persistência de categorias.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Criar persiste uma categoria. Nome repetido na empresa devolve ErrDuplicado.
func (r *CategoriaRepo) Criar(ctx context.Context, c *entity.Categoria) error {
	query := `INSERT INTO categoria (id, empresa_id, nome, cor, criado_em) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, c.ID, c.EmpresaID, c.Nome, c.Cor, c.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// ListarPorEmpresa devolve as categorias da empresa em ordem alfabética.
func (r *CategoriaRepo) ListarPorEmpresa(ctx context.Context, empresaID string) ([]*entity.Categoria, error) {
	query := `SELECT id, empresa_id, nome, cor, criado_em FROM categoria WHERE empresa_id = $1 ORDER BY nome`
	rows, err := r.q.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var categorias []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.Nome, &c.Cor, &c.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		categorias = append(categorias, &c)
	}
	return categorias, rows.Err()
}

// Remover apaga uma categoria da empresa.
func (r *CategoriaRepo) Remover(ctx context.Context, empresaID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categoria WHERE empresa_id = $1 AND id = $2`, empresaID, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
