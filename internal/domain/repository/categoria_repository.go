package repository

import (
	"context"

	"github.com/dipperr/foodflow/internal/domain/entity"
)

// CategoriaRepository define a porta de persistência de Categoria.
type CategoriaRepository interface {
	Criar(ctx context.Context, categoria *entity.Categoria) error
	ListarPorEmpresa(ctx context.Context, empresaID string) ([]*entity.Categoria, error)
	Remover(ctx context.Context, empresaID, id string) error
}

// FornecedorRepository define a porta de persistência de Fornecedor.
type FornecedorRepository interface {
	Criar(ctx context.Context, fornecedor *entity.Fornecedor) error
	ListarPorEmpresa(ctx context.Context, empresaID string) ([]*entity.Fornecedor, error)
	Atualizar(ctx context.Context, fornecedor *entity.Fornecedor) error
	Remover(ctx context.Context, empresaID, id string) error
}
