package estoque_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/estoque"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// ProjetarQuantidade
// ──────────────────────────────────────────────────────────────────────────────

// Entrada soma o delta ao nível atual.
func TestProjetarQuantidade_EntradaSoma(t *testing.T) {
	nova, err := estoque.ProjetarQuantidade(estoque.OperacaoEntrada, dec("5"), dec("10"))
	require.NoError(t, err)
	assert.True(t, nova.Equal(dec("15")), "5 + entrada de 10 deve dar 15, deu %s", nova)
}

// Saída subtrai o delta do nível atual.
func TestProjetarQuantidade_SaidaSubtrai(t *testing.T) {
	nova, err := estoque.ProjetarQuantidade(estoque.OperacaoSaida, dec("15"), dec("3"))
	require.NoError(t, err)
	assert.True(t, nova.Equal(dec("12")), "15 - saída de 3 deve dar 12, deu %s", nova)
}

// Inventário sobrescreve o nível: o delta é a contagem, não um ajuste.
func TestProjetarQuantidade_InventarioSobrescreve(t *testing.T) {
	nova, err := estoque.ProjetarQuantidade(estoque.OperacaoInventario, dec("42.7"), dec("8"))
	require.NoError(t, err)
	assert.True(t, nova.Equal(dec("8")), "inventário de 8 deve sobrescrever o nível, deu %s", nova)
}

// Operação fora da enumeração é rejeitada, nunca ignorada em silêncio.
func TestProjetarQuantidade_OperacaoDesconhecidaRejeitada(t *testing.T) {
	_, err := estoque.ProjetarQuantidade(estoque.OperacaoNenhuma, dec("5"), dec("1"))
	assert.ErrorIs(t, err, domain.ErrOperacaoDesconhecida)

	_, err = estoque.ProjetarQuantidade(estoque.Operacao(99), dec("5"), dec("1"))
	assert.ErrorIs(t, err, domain.ErrOperacaoDesconhecida)
}

// Frações decimais não sofrem arredondamento binário.
func TestProjetarQuantidade_PrecisaoDecimal(t *testing.T) {
	nova, err := estoque.ProjetarQuantidade(estoque.OperacaoEntrada, dec("0.1"), dec("0.2"))
	require.NoError(t, err)
	assert.True(t, nova.Equal(dec("0.3")), "0.1 + 0.2 deve dar exatamente 0.3, deu %s", nova)
}

// ──────────────────────────────────────────────────────────────────────────────
// SerieNivelEstoque
// ──────────────────────────────────────────────────────────────────────────────

// A série reconstrói o nível dobrando o histórico: entradas somam, saídas
// subtraem e o inventário redefine o acumulado.
func TestSerieNivelEstoque_ReproduzHistorico(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	movs := []estoque.MovimentoSerie{
		{Data: base, Operacao: estoque.OperacaoEntrada, Quantidade: dec("10")},
		{Data: base.AddDate(0, 0, 1), Operacao: estoque.OperacaoSaida, Quantidade: dec("4")},
		{Data: base.AddDate(0, 0, 2), Operacao: estoque.OperacaoInventario, Quantidade: dec("20")},
		{Data: base.AddDate(0, 0, 3), Operacao: estoque.OperacaoSaida, Quantidade: dec("5")},
	}

	serie := estoque.SerieNivelEstoque(movs)
	require.Len(t, serie, 4)
	assert.True(t, serie[0].Nivel.Equal(dec("10")))
	assert.True(t, serie[1].Nivel.Equal(dec("6")))
	assert.True(t, serie[2].Nivel.Equal(dec("20")), "inventário deve redefinir o nível acumulado")
	assert.True(t, serie[3].Nivel.Equal(dec("15")))
}

// Reaplicar o mesmo histórico produz sempre a mesma série (projeção pura).
func TestSerieNivelEstoque_Deterministica(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	movs := []estoque.MovimentoSerie{
		{Data: base, Operacao: estoque.OperacaoEntrada, Quantidade: dec("7.5")},
		{Data: base.AddDate(0, 0, 1), Operacao: estoque.OperacaoSaida, Quantidade: dec("2.5")},
	}

	primeira := estoque.SerieNivelEstoque(movs)
	segunda := estoque.SerieNivelEstoque(movs)
	require.Equal(t, len(primeira), len(segunda))
	for i := range primeira {
		assert.True(t, primeira[i].Nivel.Equal(segunda[i].Nivel))
	}
}

// Histórico vazio devolve série vazia, não nil panic.
func TestSerieNivelEstoque_HistoricoVazio(t *testing.T) {
	serie := estoque.SerieNivelEstoque(nil)
	assert.Empty(t, serie)
}
