package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarProdutoRequest body para POST /api/produtos. Campos numéricos em texto
// pt-BR, como no restante da API.
type CriarProdutoRequest struct {
	Nome          string   `json:"nome"`
	Unidade       string   `json:"unidade"`
	Quantidade    string   `json:"quantidade"`
	EstoqueMinimo string   `json:"estoque_minimo"`
	Preco         string   `json:"preco,omitempty"`
	CMV           bool     `json:"cmv"`
	Categorias    []string `json:"categorias,omitempty"`
	Fornecedores  []string `json:"fornecedores,omitempty"`
}

// AtualizarProdutoRequest body para PUT /api/produtos/:id. A quantidade não
// aparece aqui: estoque só muda por movimentação.
type AtualizarProdutoRequest struct {
	Nome          string   `json:"nome"`
	Unidade       string   `json:"unidade"`
	EstoqueMinimo string   `json:"estoque_minimo"`
	Preco         string   `json:"preco,omitempty"`
	CMV           bool     `json:"cmv"`
	Categorias    []string `json:"categorias,omitempty"`
	Fornecedores  []string `json:"fornecedores,omitempty"`
}

// ProdutoResponse produto com campos derivados de estoque.
type ProdutoResponse struct {
	ID             string           `json:"id"`
	Nome           string           `json:"nome"`
	Unidade        string           `json:"unidade"`
	Quantidade     decimal.Decimal  `json:"quantidade"`
	EstoqueMinimo  decimal.Decimal  `json:"estoque_minimo"`
	PrecoUnidade   *decimal.Decimal `json:"preco_unidade,omitempty"`
	CMV            bool             `json:"cmv"`
	Categorias     []string         `json:"categorias"`
	Fornecedores   []string         `json:"fornecedores"`
	ValorEstoque   *decimal.Decimal `json:"valor_estoque,omitempty"`
	AbaixoDoMinimo bool             `json:"abaixo_do_minimo"`
	EstoqueCritico bool             `json:"estoque_critico"`
	CriadoEm       time.Time        `json:"criado_em"`
}
