// Package ledger implementa o diário de movimentações: registro transacional
// de entradas, saídas e inventários, com projeção do nível de estoque e
// idempotência por chave do cliente.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/estoque"
	"github.com/dipperr/foodflow/internal/domain/moeda"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

// RegistrarMovimentacaoUseCase registra lançamentos no diário de forma
// transacional: o nível do produto e a linha da movimentação são gravados na
// mesma transação, com SELECT FOR UPDATE na linha do produto.
type RegistrarMovimentacaoUseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoRepository
	tzOffset    string
	agora       func() time.Time
	log         zerolog.Logger
}

// NewRegistrarMovimentacaoUseCase constrói o caso de uso. tzOffset é o fuso
// de offset fixo das datas de formulário (ex: "-04:00").
func NewRegistrarMovimentacaoUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoRepository,
	tzOffset string,
	log zerolog.Logger,
) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{
		txRunner:    txRunner,
		produtoRepo: produtoRepo,
		movRepo:     movRepo,
		tzOffset:    tzOffset,
		agora:       time.Now,
		log:         log,
	}
}

// Registrar valida e grava um lançamento. Fluxo:
//  1. parse dos campos pt-BR (quantidade, preço, datas) — erro rejeita, nunca
//     coage a zero;
//  2. política da operação: campos fora do alcance da operação são zerados
//     antes de aplicar os visíveis, e a classificação precisa pertencer à
//     operação;
//  3. replay por chave de idempotência, se informada;
//  4. transação: FOR UPDATE no produto, projeção do novo nível, update do
//     produto e insert da movimentação.
func (uc *RegistrarMovimentacaoUseCase) Registrar(
	ctx context.Context, empresaID string, in dto.RegistrarMovimentacaoRequest,
) (*dto.RegistrarMovimentacaoResponse, error) {
	op, err := estoque.ParseOperacao(in.Operacao)
	if err != nil {
		return nil, err
	}

	qtd, err := moeda.ParseDecimalBR(in.Quantidade)
	if err != nil {
		return nil, err
	}
	if qtd.IsNegative() {
		return nil, fmt.Errorf("%w: quantidade negativa", domain.ErrEntradaInvalida)
	}
	// Inventário aceita zero (zerar o estoque); entrada e saída não.
	if qtd.IsZero() && op != estoque.OperacaoInventario {
		return nil, fmt.Errorf("%w: quantidade deve ser maior que zero", domain.ErrEntradaInvalida)
	}

	efeitos := estoque.Efeitos(op)
	if !estoque.ClassificacaoPermitida(op, in.Classificacao) {
		return nil, fmt.Errorf("%w: classificação %q não pertence à operação %s",
			domain.ErrEntradaInvalida, in.Classificacao, op)
	}

	// Campos fora da política da operação são descartados, não gravados.
	var classificacao *string
	if len(efeitos.Classificacoes) > 0 && in.Classificacao != "" {
		c := in.Classificacao
		classificacao = &c
	}
	var precoMovimentacao *decimal.Decimal
	if efeitos.PrecoVisivel {
		precoMovimentacao, err = moeda.ParseDecimalBROpcional(in.Preco)
		if err != nil {
			return nil, err
		}
	}
	var validade *time.Time
	if efeitos.ValidadeVisivel && in.DataValidade != "" {
		v, err := moeda.ParseSomenteDataBR(in.DataValidade, uc.tzOffset)
		if err != nil {
			return nil, err
		}
		validade = &v
	}

	agora := uc.agora()
	dataMov := agora
	if loc, errLoc := moeda.Fuso(uc.tzOffset); errLoc == nil {
		dataMov = agora.In(loc)
	}
	if in.Data != "" {
		dataMov, err = moeda.ParseDataBR(in.Data, agora, uc.tzOffset)
		if err != nil {
			return nil, err
		}
	}

	produto, err := uc.produtoRepo.BuscarPorID(ctx, empresaID, in.ProdutoID)
	if err != nil {
		return nil, err
	}

	// Replay: a mesma chave devolve o lançamento original, sem reaplicar.
	if in.ChaveIdempotencia != "" {
		existente, err := uc.movRepo.BuscarPorChaveIdempotencia(ctx, empresaID, in.ChaveIdempotencia)
		if err != nil && !errors.Is(err, domain.ErrNaoEncontrado) {
			return nil, err
		}
		if existente != nil {
			uc.log.Info().
				Str("empresa_id", empresaID).
				Str("chave_idempotencia", in.ChaveIdempotencia).
				Msg("replay de lançamento idempotente")
			return uc.montarResposta(existente, produto.Quantidade, produto.PrecoUnidade), nil
		}
	}

	mov := &entity.Movimentacao{
		ID:                uuid.New().String(),
		EmpresaID:         empresaID,
		IDProduto:         produto.ID,
		Unidade:           produto.UnidadeAbrev(),
		Operacao:          op.String(),
		DataMovimentacao:  dataMov,
		Quantidade:        qtd,
		Classificacao:     classificacao,
		PrecoMovimentacao: precoMovimentacao,
		DataValidade:      validade,
		Informacoes:       in.Informacoes,
		ChaveIdempotencia: in.ChaveIdempotencia,
		CriadoEm:          agora,
	}

	var nova = produto.Quantidade
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		travado, err := produtoRepo.BuscarParaAtualizar(ctx, empresaID, produto.ID)
		if err != nil {
			return err
		}
		nova, err = estoque.ProjetarQuantidade(op, travado.Quantidade, qtd)
		if err != nil {
			return err
		}
		if err := produtoRepo.AtualizarQuantidade(ctx, empresaID, produto.ID, nova); err != nil {
			return err
		}
		return movRepo.Criar(ctx, mov)
	})
	if err != nil {
		// Corrida na chave de idempotência: outro lançamento idêntico venceu
		// a transação; devolve o dele.
		if errors.Is(err, domain.ErrDuplicado) && in.ChaveIdempotencia != "" {
			existente, errBusca := uc.movRepo.BuscarPorChaveIdempotencia(ctx, empresaID, in.ChaveIdempotencia)
			if errBusca == nil && existente != nil {
				atual, errProd := uc.produtoRepo.BuscarPorID(ctx, empresaID, produto.ID)
				if errProd != nil {
					return nil, errProd
				}
				return uc.montarResposta(existente, atual.Quantidade, atual.PrecoUnidade), nil
			}
		}
		return nil, err
	}

	uc.log.Info().
		Str("empresa_id", empresaID).
		Str("produto_id", produto.ID).
		Str("operacao", op.String()).
		Str("quantidade", qtd.String()).
		Str("nova_quantidade", nova.String()).
		Msg("lançamento registrado")

	return uc.montarResposta(mov, nova, produto.PrecoUnidade), nil
}

func (uc *RegistrarMovimentacaoUseCase) montarResposta(
	mov *entity.Movimentacao, quantidade decimal.Decimal, precoUnidade *decimal.Decimal,
) *dto.RegistrarMovimentacaoResponse {
	return &dto.RegistrarMovimentacaoResponse{
		Movimentacao:   ParaMovimentacaoResponse(mov, precoUnidade),
		NovaQuantidade: quantidade,
	}
}

// ParaMovimentacaoResponse converte a entidade no DTO de resposta, resolvendo
// o preço efetivo da linha contra o preço de unidade do produto.
func ParaMovimentacaoResponse(mov *entity.Movimentacao, precoUnidade *decimal.Decimal) dto.MovimentacaoResponse {
	return dto.MovimentacaoResponse{
		ID:                mov.ID,
		ProdutoID:         mov.IDProduto,
		Unidade:           mov.Unidade,
		Operacao:          mov.Operacao,
		DataMovimentacao:  mov.DataMovimentacao,
		Quantidade:        mov.Quantidade,
		Classificacao:     mov.Classificacao,
		PrecoMovimentacao: mov.PrecoMovimentacao,
		PrecoEfetivo:      estoque.PrecoEfetivo(mov.PrecoMovimentacao, precoUnidade),
		DataValidade:      mov.DataValidade,
		Informacoes:       mov.Informacoes,
	}
}
