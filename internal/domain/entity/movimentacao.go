package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrigemWeb valor padrão do campo de origem das movimentações criadas pela aplicação.
const OrigemWeb = "Web"

// Movimentacao é um evento append-only do ledger de estoque.
// Quantidade é sempre positiva; o sinal é dado pela operação.
// Edições posteriores podem tocar classificação, quantidade, preço, validade
// e informações — nunca operação, produto ou data, e o nível do produto não
// é reprojetado por uma edição.
type Movimentacao struct {
	ID                string
	EmpresaID         string
	IDProduto         string
	Unidade           string
	Operacao          string // valor textual persistido: "entrada" | "saída" | "inventário"
	DataMovimentacao  time.Time
	Quantidade        decimal.Decimal
	Classificacao     *string
	PrecoMovimentacao *decimal.Decimal
	DataValidade      *time.Time // inerte: reservado para lotes/validade
	Informacoes       string
	ChaveIdempotencia string
	CriadoEm          time.Time
}
