// Package painel contém os agregados financeiros do dashboard: valoração de
// estoque, CMV, entradas, giro e volatilidade de preço. Todas as funções são
// transformações puras sobre tabelas desnormalizadas em memória — o
// repositório entrega as linhas, aqui só se dobra e ordena.
package painel

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/domain/estoque"
)

// SemClassificacao rótulo atribuído a movimentações sem classificação.
const SemClassificacao = "sem class."

// TopN tamanho dos rankings exibidos nos cartões do painel.
const TopN = 5

// MovimentoValorado é a linha desnormalizada do histórico: a movimentação com
// nome, preço de referência e categorias do produto anexados. Uma linha por
// movimentação; a explosão por categoria acontece dentro dos agregados que
// agrupam por categoria.
type MovimentoValorado struct {
	Operacao          estoque.Operacao
	Classificacao     string // já normalizado; vazio vira SemClassificacao no repositório
	Data              time.Time
	NomeProduto       string
	Quantidade        decimal.Decimal
	PrecoMovimentacao *decimal.Decimal
	PrecoUnidade      *decimal.Decimal
	Categorias        []string
	CMV               bool // flag do produto: a linha conta para os agregados de CMV
}

// PrecoEfetivo devolve o preço a usar nas contas monetárias desta linha.
func (m MovimentoValorado) PrecoEfetivo() *decimal.Decimal {
	return estoque.PrecoEfetivo(m.PrecoMovimentacao, m.PrecoUnidade)
}

// TotalMovimentado devolve quantidade × preço efetivo, ou nil quando nem a
// movimentação nem o produto têm preço — a linha fica fora das somas
// monetárias em vez de contar como zero.
func (m MovimentoValorado) TotalMovimentado() *decimal.Decimal {
	preco := m.PrecoEfetivo()
	if preco == nil {
		return nil
	}
	v := m.Quantidade.Mul(*preco)
	return &v
}

// ProdutoResumo é a fatia de produto usada na valoração de estoque.
type ProdutoResumo struct {
	Nome          string
	Quantidade    decimal.Decimal
	EstoqueMinimo decimal.Decimal
	PrecoUnidade  *decimal.Decimal
	Categorias    []string
}

// ValorCategoria valor agregado de uma categoria.
type ValorCategoria struct {
	Categoria string
	Valor     decimal.Decimal
}

// FiltrarPorJanela restringe as linhas aos últimos `dias` dias contados de
// `agora`. dias <= 0 significa sem janela (histórico completo).
func FiltrarPorJanela(movs []MovimentoValorado, dias int, agora time.Time) []MovimentoValorado {
	if dias <= 0 {
		return movs
	}
	corte := agora.AddDate(0, 0, -dias)
	out := make([]MovimentoValorado, 0, len(movs))
	for _, m := range movs {
		if m.Data.After(corte) {
			out = append(out, m)
		}
	}
	return out
}

// ValorEstoquePorCategoria soma quantidade × preço unitário por categoria
// (produtos com mais de uma categoria contribuem para todas), descarta
// categorias com soma não positiva e devolve o top 5 por valor.
func ValorEstoquePorCategoria(produtos []ProdutoResumo) []ValorCategoria {
	soma := map[string]decimal.Decimal{}
	for _, p := range produtos {
		if p.PrecoUnidade == nil {
			continue
		}
		valor := p.Quantidade.Mul(*p.PrecoUnidade)
		for _, cat := range p.Categorias {
			soma[cat] = soma[cat].Add(valor)
		}
	}
	ranking := make([]ValorCategoria, 0, len(soma))
	for cat, v := range soma {
		if v.GreaterThan(decimal.Zero) {
			ranking = append(ranking, ValorCategoria{Categoria: cat, Valor: v})
		}
	}
	ordenarPorValor(ranking)
	return topN(ranking, TopN)
}

// ValorTotalEstoque soma quantidade × preço unitário de todos os produtos
// precificados (cartão "valor em estoque").
func ValorTotalEstoque(produtos []ProdutoResumo) decimal.Decimal {
	total := decimal.Zero
	for _, p := range produtos {
		if p.PrecoUnidade == nil {
			continue
		}
		total = total.Add(p.Quantidade.Mul(*p.PrecoUnidade))
	}
	return total
}

// CMVReal soma quantidade × preço efetivo das saídas de produtos marcados
// para CMV. Linhas sem preço efetivo ficam fora da soma; a flag do produto só
// restringe os agregados de CMV, nunca o resto do painel.
func CMVReal(movs []MovimentoValorado) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		if m.Operacao != estoque.OperacaoSaida || !m.CMV {
			continue
		}
		if t := m.TotalMovimentado(); t != nil {
			total = total.Add(*t)
		}
	}
	return total
}

// CMVCategoria uma célula do agregado CMV por categoria × classificação.
type CMVCategoria struct {
	Categoria     string
	Classificacao string
	Total         decimal.Decimal
}

// CMVPorCategoriaClassificacao agrupa as saídas de produtos marcados para CMV
// por (categoria, classificação), explodindo as categorias do produto, ordena
// por total decrescente e restringe às 5 categorias de maior total agregado.
func CMVPorCategoriaClassificacao(movs []MovimentoValorado) []CMVCategoria {
	type chave struct{ cat, classi string }
	soma := map[chave]decimal.Decimal{}
	porCategoria := map[string]decimal.Decimal{}

	for _, m := range movs {
		if m.Operacao != estoque.OperacaoSaida || !m.CMV {
			continue
		}
		t := m.TotalMovimentado()
		if t == nil {
			continue
		}
		classi := m.Classificacao
		if classi == "" {
			classi = SemClassificacao
		}
		for _, cat := range m.Categorias {
			k := chave{cat, classi}
			soma[k] = soma[k].Add(*t)
			porCategoria[cat] = porCategoria[cat].Add(*t)
		}
	}

	maiores := make([]ValorCategoria, 0, len(porCategoria))
	for cat, v := range porCategoria {
		maiores = append(maiores, ValorCategoria{Categoria: cat, Valor: v})
	}
	ordenarPorValor(maiores)
	maiores = topN(maiores, TopN)
	manter := map[string]bool{}
	for _, c := range maiores {
		manter[c.Categoria] = true
	}

	out := make([]CMVCategoria, 0, len(soma))
	for k, v := range soma {
		if manter[k.cat] {
			out = append(out, CMVCategoria{Categoria: k.cat, Classificacao: k.classi, Total: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		if out[i].Categoria != out[j].Categoria {
			return out[i].Categoria < out[j].Categoria
		}
		return out[i].Classificacao < out[j].Classificacao
	})
	return out
}

// TotalEntradas soma quantidade × preço efetivo de todas as entradas.
func TotalEntradas(movs []MovimentoValorado) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		if m.Operacao != estoque.OperacaoEntrada {
			continue
		}
		if t := m.TotalMovimentado(); t != nil {
			total = total.Add(*t)
		}
	}
	return total
}

// EntradaClassificacao total de entradas de uma classificação.
type EntradaClassificacao struct {
	Classificacao string
	Total         decimal.Decimal
}

// EntradasPorClassificacao agrupa as entradas por classificação, em ordem
// decrescente de total.
func EntradasPorClassificacao(movs []MovimentoValorado) []EntradaClassificacao {
	soma := map[string]decimal.Decimal{}
	for _, m := range movs {
		if m.Operacao != estoque.OperacaoEntrada {
			continue
		}
		t := m.TotalMovimentado()
		if t == nil {
			continue
		}
		classi := m.Classificacao
		if classi == "" {
			classi = SemClassificacao
		}
		soma[classi] = soma[classi].Add(*t)
	}
	out := make([]EntradaClassificacao, 0, len(soma))
	for classi, v := range soma {
		out = append(out, EntradaClassificacao{Classificacao: classi, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Classificacao < out[j].Classificacao
	})
	return out
}

// SerieGiro reconstrói a série de nível de estoque de um produto a partir das
// movimentações, ordenadas por data, opcionalmente janelada.
func SerieGiro(movs []MovimentoValorado, nomeProduto string, dias int, agora time.Time) []estoque.PontoSerie {
	fil := make([]MovimentoValorado, 0, len(movs))
	for _, m := range FiltrarPorJanela(movs, dias, agora) {
		if m.NomeProduto == nomeProduto {
			fil = append(fil, m)
		}
	}
	sort.Slice(fil, func(i, j int) bool { return fil[i].Data.Before(fil[j].Data) })

	serie := make([]estoque.MovimentoSerie, 0, len(fil))
	for _, m := range fil {
		serie = append(serie, estoque.MovimentoSerie{
			Data:       m.Data,
			Operacao:   m.Operacao,
			Quantidade: m.Quantidade,
		})
	}
	return estoque.SerieNivelEstoque(serie)
}

// MaioresMovimentados devolve os nomes dos produtos com maior R$ movimentado,
// para popular o seletor do cartão de giro.
func MaioresMovimentados(movs []MovimentoValorado, n int) []string {
	soma := map[string]decimal.Decimal{}
	for _, m := range movs {
		if t := m.TotalMovimentado(); t != nil {
			soma[m.NomeProduto] = soma[m.NomeProduto].Add(*t)
		}
	}
	ranking := make([]ValorCategoria, 0, len(soma))
	for nome, v := range soma {
		ranking = append(ranking, ValorCategoria{Categoria: nome, Valor: v})
	}
	ordenarPorValor(ranking)
	ranking = topN(ranking, n)
	nomes := make([]string, 0, len(ranking))
	for _, r := range ranking {
		nomes = append(nomes, r.Categoria)
	}
	return nomes
}

// VariacaoPreco spread de preço de um produto na janela observada.
type VariacaoPreco struct {
	NomeProduto string
	Minimo      decimal.Decimal
	Maximo      decimal.Decimal
	Variacao    decimal.Decimal
}

// VolatilidadePreco agrupa as movimentações dos últimos 30 dias por produto,
// calcula max(preço efetivo) − min(preço efetivo), mantém apenas spreads
// positivos e devolve o top 5 decrescente.
func VolatilidadePreco(movs []MovimentoValorado, agora time.Time) []VariacaoPreco {
	type faixa struct {
		min, max decimal.Decimal
		visto    bool
	}
	faixas := map[string]*faixa{}
	for _, m := range FiltrarPorJanela(movs, 30, agora) {
		preco := m.PrecoEfetivo()
		if preco == nil {
			continue
		}
		f, ok := faixas[m.NomeProduto]
		if !ok {
			f = &faixa{}
			faixas[m.NomeProduto] = f
		}
		if !f.visto || preco.LessThan(f.min) {
			f.min = *preco
		}
		if !f.visto || preco.GreaterThan(f.max) {
			f.max = *preco
		}
		f.visto = true
	}

	out := make([]VariacaoPreco, 0, len(faixas))
	for nome, f := range faixas {
		variacao := f.max.Sub(f.min)
		if variacao.GreaterThan(decimal.Zero) {
			out = append(out, VariacaoPreco{NomeProduto: nome, Minimo: f.min, Maximo: f.max, Variacao: variacao})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Variacao.Equal(out[j].Variacao) {
			return out[i].Variacao.GreaterThan(out[j].Variacao)
		}
		return out[i].NomeProduto < out[j].NomeProduto
	})
	return out[:min(TopN, len(out))]
}

func ordenarPorValor(vs []ValorCategoria) {
	sort.Slice(vs, func(i, j int) bool {
		if !vs[i].Valor.Equal(vs[j].Valor) {
			return vs[i].Valor.GreaterThan(vs[j].Valor)
		}
		return vs[i].Categoria < vs[j].Categoria
	})
}

func topN(vs []ValorCategoria, n int) []ValorCategoria {
	if len(vs) > n {
		return vs[:n]
	}
	return vs
}
