// Package usecase reúne os casos de uso de cadastro: produtos, categorias e
// fornecedores.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/application/ledger"
	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/estoque"
	"github.com/dipperr/foodflow/internal/domain/moeda"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

// ProdutoUseCase cadastro de produtos. A quantidade inicial entra pelo
// diário: criar um produto com estoque gera o lançamento de entrada na mesma
// transação do insert.
type ProdutoUseCase struct {
	txRunner    ledger.TxRunner
	produtoRepo repository.ProdutoRepository
	tzOffset    string
	log         zerolog.Logger
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(
	txRunner ledger.TxRunner,
	produtoRepo repository.ProdutoRepository,
	tzOffset string,
	log zerolog.Logger,
) *ProdutoUseCase {
	return &ProdutoUseCase{txRunner: txRunner, produtoRepo: produtoRepo, tzOffset: tzOffset, log: log}
}

// Criar valida o cadastro e grava produto + lançamento inicial numa única
// transação.
func (uc *ProdutoUseCase) Criar(
	ctx context.Context, empresaID string, in dto.CriarProdutoRequest,
) (*dto.ProdutoResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrEntradaInvalida)
	}
	if !unidadeValida(in.Unidade) {
		return nil, fmt.Errorf("%w: unidade %q desconhecida", domain.ErrEntradaInvalida, in.Unidade)
	}

	qtd, err := moeda.ParseDecimalBR(in.Quantidade)
	if err != nil {
		return nil, err
	}
	if qtd.IsNegative() {
		return nil, fmt.Errorf("%w: quantidade negativa", domain.ErrEntradaInvalida)
	}
	minimo, err := moeda.ParseDecimalBR(in.EstoqueMinimo)
	if err != nil {
		return nil, err
	}
	preco, err := moeda.ParseDecimalBROpcional(in.Preco)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	if loc, errLoc := moeda.Fuso(uc.tzOffset); errLoc == nil {
		agora = agora.In(loc)
	}
	produto := &entity.Produto{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		Nome:          in.Nome,
		Unidade:       in.Unidade,
		Quantidade:    qtd,
		EstoqueMinimo: minimo,
		PrecoUnidade:  preco,
		CMV:           in.CMV,
		Categorias:    in.Categorias,
		Fornecedores:  in.Fornecedores,
		CriadoEm:      agora,
		AtualizadoEm:  agora,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		if err := produtoRepo.Criar(ctx, produto); err != nil {
			return err
		}
		if qtd.IsZero() {
			return nil
		}
		// Estoque inicial entra pelo diário, como qualquer outra entrada.
		mov := &entity.Movimentacao{
			ID:                uuid.New().String(),
			EmpresaID:         empresaID,
			IDProduto:         produto.ID,
			Unidade:           produto.UnidadeAbrev(),
			Operacao:          estoque.OperacaoEntrada.String(),
			DataMovimentacao:  agora,
			Quantidade:        qtd,
			PrecoMovimentacao: preco,
			Informacoes:       "cadastro inicial do produto",
			CriadoEm:          agora,
		}
		return movRepo.Criar(ctx, mov)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("empresa_id", empresaID).
		Str("produto_id", produto.ID).
		Str("nome", produto.Nome).
		Msg("produto cadastrado")

	resp := ParaProdutoResponse(produto)
	return &resp, nil
}

// Atualizar grava os campos de cadastro. A quantidade fica de fora: estoque
// só muda por movimentação.
func (uc *ProdutoUseCase) Atualizar(
	ctx context.Context, empresaID, id string, in dto.AtualizarProdutoRequest,
) (*dto.ProdutoResponse, error) {
	produto, err := uc.produtoRepo.BuscarPorID(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrEntradaInvalida)
	}
	if !unidadeValida(in.Unidade) {
		return nil, fmt.Errorf("%w: unidade %q desconhecida", domain.ErrEntradaInvalida, in.Unidade)
	}
	minimo, err := moeda.ParseDecimalBR(in.EstoqueMinimo)
	if err != nil {
		return nil, err
	}
	preco, err := moeda.ParseDecimalBROpcional(in.Preco)
	if err != nil {
		return nil, err
	}

	produto.Nome = in.Nome
	produto.Unidade = in.Unidade
	produto.EstoqueMinimo = minimo
	produto.PrecoUnidade = preco
	produto.CMV = in.CMV
	produto.Categorias = in.Categorias
	produto.Fornecedores = in.Fornecedores
	produto.AtualizadoEm = time.Now()

	if err := uc.produtoRepo.Atualizar(ctx, produto); err != nil {
		return nil, err
	}
	resp := ParaProdutoResponse(produto)
	return &resp, nil
}

// Buscar devolve um produto da empresa.
func (uc *ProdutoUseCase) Buscar(ctx context.Context, empresaID, id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.produtoRepo.BuscarPorID(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	resp := ParaProdutoResponse(produto)
	return &resp, nil
}

// Listar devolve os produtos da empresa com os campos derivados de estoque.
func (uc *ProdutoUseCase) Listar(ctx context.Context, empresaID string) ([]dto.ProdutoResponse, error) {
	produtos, err := uc.produtoRepo.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, ParaProdutoResponse(p))
	}
	return out, nil
}

// Remover apaga um produto da empresa.
func (uc *ProdutoUseCase) Remover(ctx context.Context, empresaID, id string) error {
	return uc.produtoRepo.Remover(ctx, empresaID, id)
}

// ParaProdutoResponse converte a entidade no DTO com campos derivados.
func ParaProdutoResponse(p *entity.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:             p.ID,
		Nome:           p.Nome,
		Unidade:        p.Unidade,
		Quantidade:     p.Quantidade,
		EstoqueMinimo:  p.EstoqueMinimo,
		PrecoUnidade:   p.PrecoUnidade,
		CMV:            p.CMV,
		Categorias:     p.Categorias,
		Fornecedores:   p.Fornecedores,
		ValorEstoque:   p.ValorEstoque(),
		AbaixoDoMinimo: p.AbaixoDoMinimo(),
		EstoqueCritico: p.EstoqueCritico(),
		CriadoEm:       p.CriadoEm,
	}
}

func unidadeValida(u string) bool {
	for _, candidata := range entity.Unidades {
		if candidata == u {
			return true
		}
	}
	return false
}
