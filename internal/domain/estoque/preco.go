package estoque

import "github.com/shopspring/decimal"

// PrecoEfetivo resolve o preço a usar em qualquer conta monetária: o preço da
// própria movimentação quando presente, senão o preço de referência do
// produto. Devolve nil quando ambos faltam — agregados monetários DEVEM
// excluir a linha nesse caso, nunca tratar como zero.
func PrecoEfetivo(precoMovimentacao, precoUnidade *decimal.Decimal) *decimal.Decimal {
	if precoMovimentacao != nil {
		return precoMovimentacao
	}
	return precoUnidade
}
