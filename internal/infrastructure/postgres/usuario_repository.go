package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Criar persiste um usuário. Telefone repetido devolve ErrDuplicado.
func (r *UsuarioRepo) Criar(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, empresa_id, nome, telefone, senha_hash, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, u.ID, u.EmpresaID, u.Nome, u.Telefone, u.SenhaHash, u.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// BuscarPorID busca um usuário pelo id.
func (r *UsuarioRepo) BuscarPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT id, empresa_id, nome, telefone, senha_hash, criado_em FROM usuarios WHERE id = $1`
	return r.buscarUm(ctx, query, id)
}

// BuscarPorTelefone busca um usuário pelo telefone de login.
func (r *UsuarioRepo) BuscarPorTelefone(ctx context.Context, telefone string) (*entity.Usuario, error) {
	query := `SELECT id, empresa_id, nome, telefone, senha_hash, criado_em FROM usuarios WHERE telefone = $1`
	return r.buscarUm(ctx, query, telefone)
}

func (r *UsuarioRepo) buscarUm(ctx context.Context, query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.EmpresaID, &u.Nome, &u.Telefone, &u.SenhaHash, &u.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUsuarioNaoEncontrado
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador de persistência de empresas.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Criar persiste uma empresa.
func (r *EmpresaRepo) Criar(ctx context.Context, e *entity.Empresa) error {
	query := `INSERT INTO empresas (id, nome, criado_em) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, e.ID, e.Nome, e.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// BuscarPorID busca uma empresa pelo id.
func (r *EmpresaRepo) BuscarPorID(ctx context.Context, id string) (*entity.Empresa, error) {
	query := `SELECT id, nome, criado_em FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Nome, &e.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}
