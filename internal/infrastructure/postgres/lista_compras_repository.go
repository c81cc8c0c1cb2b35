package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

var _ repository.ListaComprasRepository = (*ListaComprasRepo)(nil)

// ListaComprasRepo implementação do porto ListaComprasRepository sobre
// PostgreSQL. Os itens da lista são um documento JSONB: snapshot imutável dos
// produtos no momento da inclusão, sem joins na leitura.
type ListaComprasRepo struct {
	q Querier
}

// NewListaComprasRepository constrói o adaptador de persistência de listas.
func NewListaComprasRepository(q Querier) *ListaComprasRepo {
	return &ListaComprasRepo{q: q}
}

// Criar persiste uma lista nova.
func (r *ListaComprasRepo) Criar(ctx context.Context, l *entity.ListaCompras) error {
	itens, err := json.Marshal(l.Itens)
	if err != nil {
		return fmt.Errorf("marshal itens: %w", err)
	}
	query := `
		INSERT INTO lista_compras (id, empresa_id, nome, valor_total, itens, recebimento, finalizada, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		l.ID, l.EmpresaID, l.Nome, l.ValorTotal, itens, l.Recebimento, l.Finalizada, l.CriadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert lista: %w", err)
	}
	return nil
}

// BuscarPorID busca uma lista da empresa.
func (r *ListaComprasRepo) BuscarPorID(ctx context.Context, empresaID, id string) (*entity.ListaCompras, error) {
	query := `
		SELECT id, empresa_id, nome, valor_total, itens, recebimento, finalizada, criado_em
		FROM lista_compras WHERE empresa_id = $1 AND id = $2`
	var l entity.ListaCompras
	var itens []byte
	err := r.q.QueryRow(ctx, query, empresaID, id).Scan(
		&l.ID, &l.EmpresaID, &l.Nome, &l.ValorTotal, &itens, &l.Recebimento, &l.Finalizada, &l.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("get lista: %w", err)
	}
	if err := json.Unmarshal(itens, &l.Itens); err != nil {
		return nil, fmt.Errorf("unmarshal itens: %w", err)
	}
	return &l, nil
}

// ListarPorEmpresa devolve as listas da empresa, mais recentes primeiro.
func (r *ListaComprasRepo) ListarPorEmpresa(
	ctx context.Context, empresaID string, somenteAbertas bool,
) ([]*entity.ListaCompras, error) {
	query := `
		SELECT id, empresa_id, nome, valor_total, itens, recebimento, finalizada, criado_em
		FROM lista_compras WHERE empresa_id = $1`
	if somenteAbertas {
		query += ` AND NOT finalizada`
	}
	query += ` ORDER BY criado_em DESC`

	rows, err := r.q.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list listas: %w", err)
	}
	defer rows.Close()

	var listas []*entity.ListaCompras
	for rows.Next() {
		var l entity.ListaCompras
		var itens []byte
		if err := rows.Scan(
			&l.ID, &l.EmpresaID, &l.Nome, &l.ValorTotal, &itens, &l.Recebimento, &l.Finalizada, &l.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan lista: %w", err)
		}
		if err := json.Unmarshal(itens, &l.Itens); err != nil {
			return nil, fmt.Errorf("unmarshal itens: %w", err)
		}
		listas = append(listas, &l)
	}
	return listas, rows.Err()
}

// Atualizar grava itens, total e estado de finalização.
func (r *ListaComprasRepo) Atualizar(ctx context.Context, l *entity.ListaCompras) error {
	itens, err := json.Marshal(l.Itens)
	if err != nil {
		return fmt.Errorf("marshal itens: %w", err)
	}
	query := `
		UPDATE lista_compras
		SET nome = $3, valor_total = $4, itens = $5, recebimento = $6, finalizada = $7
		WHERE empresa_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		l.EmpresaID, l.ID, l.Nome, l.ValorTotal, itens, l.Recebimento, l.Finalizada,
	)
	if err != nil {
		return fmt.Errorf("update lista: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Remover apaga uma lista da empresa.
func (r *ListaComprasRepo) Remover(ctx context.Context, empresaID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM lista_compras WHERE empresa_id = $1 AND id = $2`, empresaID, id)
	if err != nil {
		return fmt.Errorf("delete lista: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
