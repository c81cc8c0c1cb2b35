package repository

import (
	"context"

	"github.com/dipperr/foodflow/internal/domain/entity"
)

// UsuarioRepository define a porta de persistência de Usuario.
type UsuarioRepository interface {
	Criar(ctx context.Context, usuario *entity.Usuario) error
	BuscarPorID(ctx context.Context, id string) (*entity.Usuario, error)
	BuscarPorTelefone(ctx context.Context, telefone string) (*entity.Usuario, error)
}

// EmpresaRepository define a porta de persistência de Empresa.
type EmpresaRepository interface {
	Criar(ctx context.Context, empresa *entity.Empresa) error
	BuscarPorID(ctx context.Context, id string) (*entity.Empresa, error)
}
