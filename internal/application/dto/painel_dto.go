package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PainelRequest filtros de GET /api/painel.
type PainelRequest struct {
	Janela  int    `query:"janela"`  // dias: 7, 30, 90, 365; 0 = tudo
	Produto string `query:"produto"` // produto do cartão de giro; vazio = maior movimentado
}

// ValorCategoriaDTO valor agregado de uma categoria.
type ValorCategoriaDTO struct {
	Categoria string          `json:"categoria"`
	Valor     decimal.Decimal `json:"valor"`
}

// CMVCategoriaDTO célula do CMV por categoria × classificação.
type CMVCategoriaDTO struct {
	Categoria     string          `json:"categoria"`
	Classificacao string          `json:"classificacao"`
	Total         decimal.Decimal `json:"total"`
}

// EntradaClassificacaoDTO total de entradas de uma classificação.
type EntradaClassificacaoDTO struct {
	Classificacao string          `json:"classificacao"`
	Total         decimal.Decimal `json:"total"`
}

// PontoGiroDTO ponto da série de nível de estoque.
type PontoGiroDTO struct {
	Data  time.Time       `json:"data"`
	Nivel decimal.Decimal `json:"nivel"`
}

// VariacaoPrecoDTO spread de preço de um produto nos últimos 30 dias.
type VariacaoPrecoDTO struct {
	Produto  string          `json:"produto"`
	Minimo   decimal.Decimal `json:"minimo"`
	Maximo   decimal.Decimal `json:"maximo"`
	Variacao decimal.Decimal `json:"variacao"`
}

// PainelResponse agregados do dashboard, todos calculados sobre a mesma
// janela (exceto a volatilidade, sempre 30 dias).
type PainelResponse struct {
	JanelaDias         int                       `json:"janela_dias"`
	ValorTotalEstoque  decimal.Decimal           `json:"valor_total_estoque"`
	ValorPorCategoria  []ValorCategoriaDTO       `json:"valor_por_categoria"`
	CMVReal            decimal.Decimal           `json:"cmv_real"`
	CMVPorCategoria    []CMVCategoriaDTO         `json:"cmv_por_categoria"`
	TotalEntradas      decimal.Decimal           `json:"total_entradas"`
	EntradasPorClasse  []EntradaClassificacaoDTO `json:"entradas_por_classificacao"`
	ProdutoGiro        string                    `json:"produto_giro,omitempty"`
	ProdutosGiro       []string                  `json:"produtos_giro"`
	SerieGiro          []PontoGiroDTO            `json:"serie_giro"`
	VolatilidadePrecos []VariacaoPrecoDTO        `json:"volatilidade_precos"`
}
