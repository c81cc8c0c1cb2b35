package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/estoque"
	"github.com/dipperr/foodflow/internal/domain/moeda"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

// AtualizarMovimentacaoUseCase edita um lançamento já registrado:
// classificação, quantidade, preço, validade e informações. Operação, produto
// e data são imutáveis, e o nível de estoque nunca é reprojetado por uma
// edição — inventário é o mecanismo de correção do nível.
type AtualizarMovimentacaoUseCase struct {
	movRepo     repository.MovimentacaoRepository
	produtoRepo repository.ProdutoRepository
	tzOffset    string
	log         zerolog.Logger
}

// NewAtualizarMovimentacaoUseCase constrói o caso de uso.
func NewAtualizarMovimentacaoUseCase(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
	tzOffset string,
	log zerolog.Logger,
) *AtualizarMovimentacaoUseCase {
	return &AtualizarMovimentacaoUseCase{movRepo: movRepo, produtoRepo: produtoRepo, tzOffset: tzOffset, log: log}
}

// Atualizar aplica os campos permitidos pela política da operação do
// lançamento original e grava. Quantidade vazia mantém a gravada.
func (uc *AtualizarMovimentacaoUseCase) Atualizar(
	ctx context.Context, empresaID, id string, in dto.AtualizarMovimentacaoRequest,
) (*dto.MovimentacaoResponse, error) {
	mov, err := uc.movRepo.BuscarPorID(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	op, err := estoque.ParseOperacao(mov.Operacao)
	if err != nil {
		return nil, err
	}

	if in.Quantidade != "" {
		qtd, err := moeda.ParseDecimalBR(in.Quantidade)
		if err != nil {
			return nil, err
		}
		if qtd.IsNegative() {
			return nil, fmt.Errorf("%w: quantidade negativa", domain.ErrEntradaInvalida)
		}
		if qtd.IsZero() && op != estoque.OperacaoInventario {
			return nil, fmt.Errorf("%w: quantidade deve ser maior que zero", domain.ErrEntradaInvalida)
		}
		mov.Quantidade = qtd
	}

	efeitos := estoque.Efeitos(op)
	if !estoque.ClassificacaoPermitida(op, in.Classificacao) {
		return nil, fmt.Errorf("%w: classificação %q não pertence à operação %s",
			domain.ErrEntradaInvalida, in.Classificacao, op)
	}

	mov.Classificacao = nil
	if len(efeitos.Classificacoes) > 0 && in.Classificacao != "" {
		c := in.Classificacao
		mov.Classificacao = &c
	}

	mov.PrecoMovimentacao = nil
	if efeitos.PrecoVisivel {
		mov.PrecoMovimentacao, err = moeda.ParseDecimalBROpcional(in.Preco)
		if err != nil {
			return nil, err
		}
	}

	mov.DataValidade = nil
	if efeitos.ValidadeVisivel && in.DataValidade != "" {
		var v time.Time
		v, err = moeda.ParseSomenteDataBR(in.DataValidade, uc.tzOffset)
		if err != nil {
			return nil, err
		}
		mov.DataValidade = &v
	}

	mov.Informacoes = in.Informacoes

	if err := uc.movRepo.Atualizar(ctx, mov); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("empresa_id", empresaID).
		Str("movimentacao_id", id).
		Msg("lançamento atualizado")

	// Produto removido depois do lançamento: a linha resolve sem preço de
	// unidade em vez de falhar a edição.
	var precoUnidade *decimal.Decimal
	if produto, errProd := uc.produtoRepo.BuscarPorID(ctx, empresaID, mov.IDProduto); errProd == nil {
		precoUnidade = produto.PrecoUnidade
	} else if !errors.Is(errProd, domain.ErrNaoEncontrado) {
		return nil, errProd
	}

	resp := ParaMovimentacaoResponse(mov, precoUnidade)
	return &resp, nil
}
