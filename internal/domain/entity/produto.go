package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida aceitas no cadastro de produtos.
// O formato é "<plural> (<abreviação>)"; a abreviação é a unidade de exibição.
var Unidades = []string{
	"bisnagas (bg)",
	"caixas (cx)",
	"fardos (fardo)",
	"frascos (fr)",
	"galões (gl)",
	"garrafas (gr)",
	"gramas (g)",
	"latas (lt)",
	"litros (l)",
	"mililitros (ml)",
	"pacote (pct)",
	"potes (pt)",
	"quilograma (kg)",
	"rolos (rl)",
	"sacos (sc)",
	"unidades (und)",
}

// Produto representa um item do estoque. A quantidade em mãos é derivada do
// histórico de movimentações e só muda pelo ledger; os demais campos mudam
// pela edição direta do cadastro. Produtos nunca são apagados.
type Produto struct {
	ID            string
	EmpresaID     string
	Nome          string
	Unidade       string // ex: "quilograma (kg)"
	Quantidade    decimal.Decimal
	EstoqueMinimo decimal.Decimal
	PrecoUnidade  *decimal.Decimal // nil = sem preço cadastrado
	CMV           bool             // conta para o cálculo do CMV
	Categorias    []string
	Fornecedores  []string
	CriadoEm      time.Time
	AtualizadoEm  time.Time
}

// UnidadeAbrev extrai a abreviação entre parênteses da unidade de medida
// ("quilograma (kg)" -> "kg"). Devolve a unidade inteira se não houver parênteses.
func (p *Produto) UnidadeAbrev() string {
	i := strings.LastIndex(p.Unidade, "(")
	j := strings.LastIndex(p.Unidade, ")")
	if i < 0 || j < i {
		return p.Unidade
	}
	return p.Unidade[i+1 : j]
}

// ValorEstoque devolve quantidade × preço unitário, ou nil se o produto não tem preço.
func (p *Produto) ValorEstoque() *decimal.Decimal {
	if p.PrecoUnidade == nil {
		return nil
	}
	v := p.Quantidade.Mul(*p.PrecoUnidade)
	return &v
}

// AbaixoDoMinimo indica estoque abaixo do mínimo configurado.
func (p *Produto) AbaixoDoMinimo() bool {
	return p.Quantidade.LessThan(p.EstoqueMinimo)
}

// EstoqueCritico indica estoque abaixo de 20% do mínimo.
func (p *Produto) EstoqueCritico() bool {
	limite := p.EstoqueMinimo.Mul(decimal.NewFromFloat(0.2))
	return p.Quantidade.LessThan(limite)
}
