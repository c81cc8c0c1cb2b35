package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemLista é o snapshot imutável de um produto dentro de uma lista de compras.
type ItemLista struct {
	IDProduto     string           `json:"id"`
	Nome          string           `json:"nome"`
	Unidade       string           `json:"unidade"`
	Quantidade    decimal.Decimal  `json:"quantidade"` // em mãos no momento da inclusão
	QtdComprar    decimal.Decimal  `json:"qtd_comprar"`
	EstoqueMinimo decimal.Decimal  `json:"estoque_minimo"`
	Preco         *decimal.Decimal `json:"preco"`
	Categorias    []string         `json:"categorias"`
}

// ValorItem devolve preço × quantidade a comprar, ou nil se o item não tem preço.
func (i ItemLista) ValorItem() *decimal.Decimal {
	if i.Preco == nil {
		return nil
	}
	v := i.Preco.Mul(i.QtdComprar)
	return &v
}

// ListaCompras agrupa itens a comprar. Criada uma vez, mutada apenas na
// finalização: Recebimento é nil até a lista ser finalizada.
type ListaCompras struct {
	ID          string
	EmpresaID   string
	Nome        string
	ValorTotal  decimal.Decimal
	Itens       []ItemLista
	Recebimento *time.Time
	Finalizada  bool
	CriadoEm    time.Time
}
