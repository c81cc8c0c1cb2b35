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

// FornecedorUseCase cadastro de fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Criar grava um fornecedor novo.
func (uc *FornecedorUseCase) Criar(
	ctx context.Context, empresaID string, in dto.FornecedorRequest,
) (*dto.FornecedorResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrEntradaInvalida)
	}
	fornecedor := &entity.Fornecedor{
		ID:           uuid.New().String(),
		EmpresaID:    empresaID,
		Nome:         in.Nome,
		NomeVendedor: in.NomeVendedor,
		Telefone:     in.Telefone,
		CriadoEm:     time.Now(),
	}
	if err := uc.repo.Criar(ctx, fornecedor); err != nil {
		return nil, err
	}
	return &dto.FornecedorResponse{
		ID:           fornecedor.ID,
		Nome:         fornecedor.Nome,
		NomeVendedor: fornecedor.NomeVendedor,
		Telefone:     fornecedor.Telefone,
	}, nil
}

// Atualizar grava nome e telefone de um fornecedor existente.
func (uc *FornecedorUseCase) Atualizar(
	ctx context.Context, empresaID, id string, in dto.FornecedorRequest,
) (*dto.FornecedorResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrEntradaInvalida)
	}
	fornecedor := &entity.Fornecedor{
		ID:           id,
		EmpresaID:    empresaID,
		Nome:         in.Nome,
		NomeVendedor: in.NomeVendedor,
		Telefone:     in.Telefone,
	}
	if err := uc.repo.Atualizar(ctx, fornecedor); err != nil {
		return nil, err
	}
	return &dto.FornecedorResponse{ID: id, Nome: in.Nome, NomeVendedor: in.NomeVendedor, Telefone: in.Telefone}, nil
}

// Listar devolve os fornecedores da empresa.
func (uc *FornecedorUseCase) Listar(ctx context.Context, empresaID string) ([]dto.FornecedorResponse, error) {
	fornecedores, err := uc.repo.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, dto.FornecedorResponse{
			ID:           f.ID,
			Nome:         f.Nome,
			NomeVendedor: f.NomeVendedor,
			Telefone:     f.Telefone,
		})
	}
	return out, nil
}

// Remover apaga um fornecedor da empresa.
func (uc *FornecedorUseCase) Remover(ctx context.Context, empresaID, id string) error {
	return uc.repo.Remover(ctx, empresaID, id)
}
