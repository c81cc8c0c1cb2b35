// Package estoque contém o motor do ledger de movimentações: a enumeração
// fechada de operações, a projeção de quantidade em estoque e a política de
// classificação por operação.
package estoque

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dipperr/foodflow/internal/domain"
)

// Operacao é a enumeração fechada dos tipos de movimentação.
// Substitui o dispatch por string do sistema legado: um tipo inválido é um
// erro imediato, nunca um miss silencioso.
type Operacao int

const (
	// OperacaoNenhuma é o estado inicial do formulário (nenhuma operação escolhida).
	OperacaoNenhuma Operacao = iota
	// OperacaoEntrada aumenta o estoque (compra, produção, transferência de entrada).
	OperacaoEntrada
	// OperacaoSaida diminui o estoque (venda, consumo interno, desperdício, transferência).
	OperacaoSaida
	// OperacaoInventario é a contagem manual: sobrescreve a quantidade em mãos.
	OperacaoInventario
)

// Valores textuais persistidos no histórico. A comparação é sensível a acento:
// "saida" sem acento NÃO é uma operação válida.
const (
	RotuloEntrada    = "entrada"
	RotuloSaida      = "saída"
	RotuloInventario = "inventário"
)

var lowerPT = cases.Lower(language.BrazilianPortuguese)

// ParseOperacao converte o rótulo textual em Operacao. Aceita qualquer caixa
// ("Entrada", "SAÍDA"), mas exige os acentos corretos.
func ParseOperacao(s string) (Operacao, error) {
	switch lowerPT.String(s) {
	case RotuloEntrada:
		return OperacaoEntrada, nil
	case RotuloSaida:
		return OperacaoSaida, nil
	case RotuloInventario:
		return OperacaoInventario, nil
	}
	return OperacaoNenhuma, domain.ErrOperacaoDesconhecida
}

// String devolve o rótulo persistido da operação.
func (o Operacao) String() string {
	switch o {
	case OperacaoEntrada:
		return RotuloEntrada
	case OperacaoSaida:
		return RotuloSaida
	case OperacaoInventario:
		return RotuloInventario
	}
	return ""
}

// Valida devolve erro se a operação não for um dos três tipos concretos.
func (o Operacao) Valida() error {
	switch o {
	case OperacaoEntrada, OperacaoSaida, OperacaoInventario:
		return nil
	}
	return domain.ErrOperacaoDesconhecida
}
