package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

// CategoriaUseCase cadastro de categorias de produto.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Criar grava uma categoria nova. Nome duplicado na empresa devolve
// ErrDuplicado pela unique do banco.
func (uc *CategoriaUseCase) Criar(
	ctx context.Context, empresaID string, in dto.CategoriaRequest,
) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrEntradaInvalida)
	}
	categoria := &entity.Categoria{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      in.Nome,
		Cor:       in.Cor,
		CriadoEm:  time.Now(),
	}
	if err := uc.repo.Criar(ctx, categoria); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome, Cor: categoria.Cor}, nil
}

// Listar devolve as categorias da empresa.
func (uc *CategoriaUseCase) Listar(ctx context.Context, empresaID string) ([]dto.CategoriaResponse, error) {
	categorias, err := uc.repo.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaResponse{ID: c.ID, Nome: c.Nome, Cor: c.Cor})
	}
	return out, nil
}

// Remover apaga uma categoria da empresa.
func (uc *CategoriaUseCase) Remover(ctx context.Context, empresaID, id string) error {
	return uc.repo.Remover(ctx, empresaID, id)
}
