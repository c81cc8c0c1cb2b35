// Package painel monta o dashboard financeiro: busca as linhas desnormalizadas
// no repositório e delega as contas ao pacote de agregados do domínio.
package painel

import (
	"context"
	"fmt"
	"time"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/painel"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

// janelas aceitas pelo filtro do painel, em dias. Zero é "tudo".
var janelasValidas = map[int]bool{0: true, 7: true, 30: true, 90: true, 365: true}

// PainelUseCase calcula os agregados do dashboard para uma empresa.
type PainelUseCase struct {
	painelRepo repository.PainelRepository
	agora      func() time.Time
}

// NewPainelUseCase constrói o caso de uso.
func NewPainelUseCase(painelRepo repository.PainelRepository) *PainelUseCase {
	return &PainelUseCase{painelRepo: painelRepo, agora: time.Now}
}

// Montar busca histórico e produtos em paralelo e calcula todos os cartões.
// A volatilidade de preço ignora a janela pedida: é sempre sobre os últimos
// 30 dias.
func (uc *PainelUseCase) Montar(
	ctx context.Context, empresaID string, in dto.PainelRequest,
) (*dto.PainelResponse, error) {
	if !janelasValidas[in.Janela] {
		return nil, fmt.Errorf("%w: janela de %d dias não suportada", domain.ErrEntradaInvalida, in.Janela)
	}

	type movsResult struct {
		movs []painel.MovimentoValorado
		err  error
	}
	type produtosResult struct {
		produtos []painel.ProdutoResumo
		err      error
	}

	movsCh := make(chan movsResult, 1)
	produtosCh := make(chan produtosResult, 1)

	go func() {
		movs, err := uc.painelRepo.ListarMovimentosValorados(ctx, empresaID)
		movsCh <- movsResult{movs, err}
	}()
	go func() {
		produtos, err := uc.painelRepo.ListarProdutosResumo(ctx, empresaID)
		produtosCh <- produtosResult{produtos, err}
	}()

	movs := <-movsCh
	produtos := <-produtosCh
	if movs.err != nil {
		return nil, fmt.Errorf("painel: histórico valorado: %w", movs.err)
	}
	if produtos.err != nil {
		return nil, fmt.Errorf("painel: resumo de produtos: %w", produtos.err)
	}

	agora := uc.agora()
	janelados := painel.FiltrarPorJanela(movs.movs, in.Janela, agora)

	// Produto do cartão de giro: o pedido, ou o de maior valor movimentado.
	produtosGiro := painel.MaioresMovimentados(janelados, painel.TopN)
	produtoGiro := in.Produto
	if produtoGiro == "" && len(produtosGiro) > 0 {
		produtoGiro = produtosGiro[0]
	}

	resp := &dto.PainelResponse{
		JanelaDias:        in.Janela,
		ValorTotalEstoque: painel.ValorTotalEstoque(produtos.produtos),
		CMVReal:           painel.CMVReal(janelados),
		TotalEntradas:     painel.TotalEntradas(janelados),
		ProdutoGiro:       produtoGiro,
		ProdutosGiro:      produtosGiro,
	}

	for _, v := range painel.ValorEstoquePorCategoria(produtos.produtos) {
		resp.ValorPorCategoria = append(resp.ValorPorCategoria, dto.ValorCategoriaDTO{
			Categoria: v.Categoria, Valor: v.Valor,
		})
	}
	for _, c := range painel.CMVPorCategoriaClassificacao(janelados) {
		resp.CMVPorCategoria = append(resp.CMVPorCategoria, dto.CMVCategoriaDTO{
			Categoria: c.Categoria, Classificacao: c.Classificacao, Total: c.Total,
		})
	}
	for _, e := range painel.EntradasPorClassificacao(janelados) {
		resp.EntradasPorClasse = append(resp.EntradasPorClasse, dto.EntradaClassificacaoDTO{
			Classificacao: e.Classificacao, Total: e.Total,
		})
	}
	if produtoGiro != "" {
		for _, p := range painel.SerieGiro(movs.movs, produtoGiro, in.Janela, agora) {
			resp.SerieGiro = append(resp.SerieGiro, dto.PontoGiroDTO{Data: p.Data, Nivel: p.Nivel})
		}
	}
	for _, v := range painel.VolatilidadePreco(movs.movs, agora) {
		resp.VolatilidadePrecos = append(resp.VolatilidadePrecos, dto.VariacaoPrecoDTO{
			Produto: v.NomeProduto, Minimo: v.Minimo, Maximo: v.Maximo, Variacao: v.Variacao,
		})
	}
	return resp, nil
}
