package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const colunasMovimentacao = `id, empresa_id, id_produto, unidade, operacao, data_movimentacao,
		quantidade, classificacao, preco_movimentacao, data_validade, informacoes,
		COALESCE(chave_idempotencia, ''), criado_em`

// MovimentacaoRepo implementação do porto MovimentacaoRepository sobre
// PostgreSQL (usável com pool ou tx).
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador de persistência do diário.
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Criar persiste um lançamento. Chave de idempotência repetida na empresa
// devolve ErrDuplicado pela unique parcial do banco.
func (r *MovimentacaoRepo) Criar(ctx context.Context, m *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacao (id, empresa_id, id_produto, unidade, operacao, data_movimentacao,
			quantidade, classificacao, preco_movimentacao, data_validade, informacoes,
			origem, chave_idempotencia, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.EmpresaID, m.IDProduto, m.Unidade, m.Operacao, m.DataMovimentacao,
		m.Quantidade, m.Classificacao, m.PrecoMovimentacao, m.DataValidade, m.Informacoes,
		entity.OrigemWeb, textoOuNulo(m.ChaveIdempotencia), m.CriadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// BuscarPorID busca um lançamento da empresa.
func (r *MovimentacaoRepo) BuscarPorID(ctx context.Context, empresaID, id string) (*entity.Movimentacao, error) {
	query := `SELECT ` + colunasMovimentacao + ` FROM movimentacao WHERE empresa_id = $1 AND id = $2`
	return r.buscarUm(ctx, query, empresaID, id)
}

// BuscarPorChaveIdempotencia busca um lançamento pela chave do cliente.
func (r *MovimentacaoRepo) BuscarPorChaveIdempotencia(ctx context.Context, empresaID, chave string) (*entity.Movimentacao, error) {
	query := `SELECT ` + colunasMovimentacao + ` FROM movimentacao WHERE empresa_id = $1 AND chave_idempotencia = $2`
	return r.buscarUm(ctx, query, empresaID, chave)
}

func (r *MovimentacaoRepo) buscarUm(ctx context.Context, query string, args ...any) (*entity.Movimentacao, error) {
	var m entity.Movimentacao
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.EmpresaID, &m.IDProduto, &m.Unidade, &m.Operacao, &m.DataMovimentacao,
		&m.Quantidade, &m.Classificacao, &m.PrecoMovimentacao, &m.DataValidade, &m.Informacoes,
		&m.ChaveIdempotencia, &m.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	return &m, nil
}

// Listar devolve o histórico mais recente primeiro, com filtros opcionais de
// produto e período.
func (r *MovimentacaoRepo) Listar(
	ctx context.Context, empresaID string, filtro repository.FiltroMovimentacoes,
) ([]*entity.Movimentacao, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + colunasMovimentacao + ` FROM movimentacao WHERE empresa_id = $1`)
	args := []any{empresaID}

	if filtro.ProdutoID != "" {
		args = append(args, filtro.ProdutoID)
		fmt.Fprintf(&sb, " AND id_produto = $%d", len(args))
	}
	if filtro.De != nil {
		args = append(args, *filtro.De)
		fmt.Fprintf(&sb, " AND data_movimentacao >= $%d", len(args))
	}
	if filtro.Ate != nil {
		args = append(args, *filtro.Ate)
		fmt.Fprintf(&sb, " AND data_movimentacao < $%d", len(args))
	}
	sb.WriteString(" ORDER BY data_movimentacao DESC, criado_em DESC")
	if filtro.Limite > 0 {
		args = append(args, filtro.Limite)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if filtro.Offset > 0 {
		args = append(args, filtro.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var movs []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		if err := rows.Scan(
			&m.ID, &m.EmpresaID, &m.IDProduto, &m.Unidade, &m.Operacao, &m.DataMovimentacao,
			&m.Quantidade, &m.Classificacao, &m.PrecoMovimentacao, &m.DataValidade, &m.Informacoes,
			&m.ChaveIdempotencia, &m.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		movs = append(movs, &m)
	}
	return movs, rows.Err()
}

// Atualizar grava os campos editáveis do lançamento. Operação, produto e
// data nunca mudam; o nível do produto não é recalculado.
func (r *MovimentacaoRepo) Atualizar(ctx context.Context, m *entity.Movimentacao) error {
	query := `
		UPDATE movimentacao
		SET classificacao = $3, quantidade = $4, preco_movimentacao = $5, data_validade = $6, informacoes = $7
		WHERE empresa_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		m.EmpresaID, m.ID, m.Classificacao, m.Quantidade, m.PrecoMovimentacao, m.DataValidade, m.Informacoes,
	)
	if err != nil {
		return fmt.Errorf("update movimentacao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Remover apaga um lançamento. O nível do produto não é recalculado: remoção
// é correção administrativa, não estorno.
func (r *MovimentacaoRepo) Remover(ctx context.Context, empresaID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM movimentacao WHERE empresa_id = $1 AND id = $2`, empresaID, id)
	if err != nil {
		return fmt.Errorf("delete movimentacao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
