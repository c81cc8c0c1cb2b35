package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/domain/moeda"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

// ListarMovimentacoesUseCase consulta o histórico do diário com filtros de
// produto e período. Cada linha sai com o preço efetivo já resolvido contra o
// preço de unidade atual do produto.
type ListarMovimentacoesUseCase struct {
	movRepo     repository.MovimentacaoRepository
	produtoRepo repository.ProdutoRepository
	tzOffset    string
}

// NewListarMovimentacoesUseCase constrói o caso de uso.
func NewListarMovimentacoesUseCase(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
	tzOffset string,
) *ListarMovimentacoesUseCase {
	return &ListarMovimentacoesUseCase{movRepo: movRepo, produtoRepo: produtoRepo, tzOffset: tzOffset}
}

// Listar devolve o histórico mais recente primeiro.
func (uc *ListarMovimentacoesUseCase) Listar(
	ctx context.Context, empresaID string, in dto.ListarMovimentacoesRequest,
) ([]dto.MovimentacaoResponse, error) {
	in.DefaultPage()

	filtro := repository.FiltroMovimentacoes{
		ProdutoID: in.ProdutoID,
		Limite:    in.Limit,
		Offset:    in.Offset,
	}
	var err error
	if filtro.De, err = uc.parseData(in.De); err != nil {
		return nil, err
	}
	if filtro.Ate, err = uc.parseData(in.Ate); err != nil {
		return nil, err
	}
	// Filtro "até" inclusivo: avança para a meia-noite seguinte.
	if filtro.Ate != nil {
		fim := filtro.Ate.AddDate(0, 0, 1)
		filtro.Ate = &fim
	}

	movs, err := uc.movRepo.Listar(ctx, empresaID, filtro)
	if err != nil {
		return nil, err
	}

	precos, err := uc.precosPorProduto(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, ParaMovimentacaoResponse(m, precos[m.IDProduto]))
	}
	return out, nil
}

// precosPorProduto indexa o preço de unidade atual por produto; movimentação
// de produto removido resolve contra preço ausente.
func (uc *ListarMovimentacoesUseCase) precosPorProduto(
	ctx context.Context, empresaID string,
) (map[string]*decimal.Decimal, error) {
	produtos, err := uc.produtoRepo.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	precos := make(map[string]*decimal.Decimal, len(produtos))
	for _, p := range produtos {
		precos[p.ID] = p.PrecoUnidade
	}
	return precos, nil
}

func (uc *ListarMovimentacoesUseCase) parseData(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := moeda.ParseSomenteDataBR(s, uc.tzOffset)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
