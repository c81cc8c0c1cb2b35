package estoque

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/domain"
)

// ProjetarQuantidade calcula a nova quantidade em mãos a partir da operação.
//
//	entrada    -> atual + delta
//	saída      -> atual - delta
//	inventário -> delta (a contagem sobrescreve o nível, não acumula)
//
// Qualquer outra operação é rejeitada. O delta deve chegar já convertido para
// decimal; parsing de texto localizado é responsabilidade do pacote moeda.
func ProjetarQuantidade(op Operacao, atual, delta decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case OperacaoEntrada:
		return atual.Add(delta), nil
	case OperacaoSaida:
		return atual.Sub(delta), nil
	case OperacaoInventario:
		return delta, nil
	}
	return decimal.Zero, domain.ErrOperacaoDesconhecida
}

// PontoSerie é um nível de estoque em um instante, para o gráfico de giro.
type PontoSerie struct {
	Data  time.Time
	Nivel decimal.Decimal
}

// MovimentoSerie é a fatia mínima de uma movimentação usada pela série de giro.
type MovimentoSerie struct {
	Data       time.Time
	Operacao   Operacao
	Quantidade decimal.Decimal
}

// SerieNivelEstoque reconstrói a série acumulada de nível de estoque a partir
// do histórico ordenado por data, começando de zero. Entradas somam, saídas
// subtraem e o inventário redefine o nível para a quantidade contada — a mesma
// semântica de sobrescrita aplicada no caminho de escrita (ProjetarQuantidade).
// A série não consulta a quantidade persistida do produto.
func SerieNivelEstoque(movs []MovimentoSerie) []PontoSerie {
	serie := make([]PontoSerie, 0, len(movs))
	nivel := decimal.Zero
	for _, m := range movs {
		switch m.Operacao {
		case OperacaoEntrada:
			nivel = nivel.Add(m.Quantidade)
		case OperacaoSaida:
			nivel = nivel.Sub(m.Quantidade)
		case OperacaoInventario:
			nivel = m.Quantidade
		default:
			continue
		}
		serie = append(serie, PontoSerie{Data: m.Data, Nivel: nivel})
	}
	return serie
}
