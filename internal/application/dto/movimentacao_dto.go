package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarMovimentacaoRequest body para POST /api/movimentacoes.
// Quantidade e Preco chegam como texto no formato pt-BR ("1.234,50",
// "R$ 10,00"); Data no formato dd/mm/aaaa. A conversão acontece no caso de
// uso, nunca no handler.
type RegistrarMovimentacaoRequest struct {
	ProdutoID         string `json:"id_produto"`
	Operacao          string `json:"operacao"`
	Quantidade        string `json:"quantidade"`
	Data              string `json:"data_movimentacao,omitempty"`
	Classificacao     string `json:"classificacao,omitempty"`
	Preco             string `json:"preco,omitempty"`
	DataValidade      string `json:"data_validade,omitempty"`
	Informacoes       string `json:"informacoes,omitempty"`
	ChaveIdempotencia string `json:"chave_idempotencia,omitempty"`
}

// AtualizarMovimentacaoRequest body para PUT /api/movimentacoes/:id.
// Classificação, quantidade, preço, validade e informações são editáveis;
// operação, produto e data do lançamento são imutáveis. Quantidade vazia
// mantém a gravada. A edição nunca reprojeta o nível de estoque.
type AtualizarMovimentacaoRequest struct {
	Classificacao string `json:"classificacao,omitempty"`
	Quantidade    string `json:"quantidade,omitempty"`
	Preco         string `json:"preco,omitempty"`
	DataValidade  string `json:"data_validade,omitempty"`
	Informacoes   string `json:"informacoes,omitempty"`
}

// MovimentacaoResponse linha do histórico. PrecoEfetivo é o preço resolvido
// para exibição: o da movimentação quando presente, senão o preço de unidade
// do produto; ausente quando nenhum dos dois existe.
type MovimentacaoResponse struct {
	ID                string           `json:"id"`
	ProdutoID         string           `json:"id_produto"`
	Unidade           string           `json:"unidade"`
	Operacao          string           `json:"operacao"`
	DataMovimentacao  time.Time        `json:"data_movimentacao"`
	Quantidade        decimal.Decimal  `json:"quantidade"`
	Classificacao     *string          `json:"classificacao,omitempty"`
	PrecoMovimentacao *decimal.Decimal `json:"preco_movimentacao,omitempty"`
	PrecoEfetivo      *decimal.Decimal `json:"preco_efetivo,omitempty"`
	DataValidade      *time.Time       `json:"data_validade,omitempty"`
	Informacoes       string           `json:"informacoes,omitempty"`
}

// RegistrarMovimentacaoResponse resultado de um lançamento: a movimentação
// gravada e o nível de estoque resultante do produto.
type RegistrarMovimentacaoResponse struct {
	Movimentacao   MovimentacaoResponse `json:"movimentacao"`
	NovaQuantidade decimal.Decimal      `json:"nova_quantidade"`
}

// ListarMovimentacoesRequest filtros de GET /api/movimentacoes.
type ListarMovimentacoesRequest struct {
	ProdutoID string `query:"id_produto"`
	De        string `query:"de"`  // dd/mm/aaaa
	Ate       string `query:"ate"` // dd/mm/aaaa
	PageRequest
}
