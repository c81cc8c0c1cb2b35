package painel_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipperr/foodflow/internal/domain/estoque"
	"github.com/dipperr/foodflow/internal/domain/painel"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func mov(op estoque.Operacao, produto string, qtd string, precoMov, precoUnid *decimal.Decimal, cats ...string) painel.MovimentoValorado {
	return painel.MovimentoValorado{
		Operacao:          op,
		Data:              time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		NomeProduto:       produto,
		Quantidade:        dec(qtd),
		PrecoMovimentacao: precoMov,
		PrecoUnidade:      precoUnid,
		Categorias:        cats,
		CMV:               true,
	}
}

// ─────────────────────────────────────────────
// Preço efetivo e total por linha
// ─────────────────────────────────────────────

func TestTotalMovimentado(t *testing.T) {
	// Preço da movimentação tem precedência sobre o do produto.
	m := mov(estoque.OperacaoSaida, "Arroz", "3", decPtr("2.00"), decPtr("9.99"))
	total := m.TotalMovimentado()
	require.NotNil(t, total)
	assert.True(t, total.Equal(dec("6.00")))

	// Sem preço da movimentação cai para o do produto.
	m = mov(estoque.OperacaoSaida, "Arroz", "3", nil, decPtr("4.00"))
	total = m.TotalMovimentado()
	require.NotNil(t, total)
	assert.True(t, total.Equal(dec("12.00")))

	// Sem preço algum a linha não vale zero: vale nada.
	m = mov(estoque.OperacaoSaida, "Arroz", "3", nil, nil)
	assert.Nil(t, m.TotalMovimentado())
}

// ─────────────────────────────────────────────
// Janela de observação
// ─────────────────────────────────────────────

func TestFiltrarPorJanela(t *testing.T) {
	agora := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	dentro := mov(estoque.OperacaoEntrada, "A", "1", nil, nil)
	dentro.Data = agora.AddDate(0, 0, -6)
	fora := mov(estoque.OperacaoEntrada, "B", "1", nil, nil)
	fora.Data = agora.AddDate(0, 0, -8)
	noCorte := mov(estoque.OperacaoEntrada, "C", "1", nil, nil)
	noCorte.Data = agora.AddDate(0, 0, -7)

	movs := []painel.MovimentoValorado{dentro, fora, noCorte}

	filtrado := painel.FiltrarPorJanela(movs, 7, agora)
	require.Len(t, filtrado, 1)
	assert.Equal(t, "A", filtrado[0].NomeProduto)

	// dias <= 0 significa histórico completo.
	assert.Len(t, painel.FiltrarPorJanela(movs, 0, agora), 3)
	assert.Len(t, painel.FiltrarPorJanela(movs, -1, agora), 3)
}

// ─────────────────────────────────────────────
// Valoração de estoque
// ─────────────────────────────────────────────

func TestValorTotalEstoque(t *testing.T) {
	produtos := []painel.ProdutoResumo{
		{Nome: "Arroz", Quantidade: dec("10"), PrecoUnidade: decPtr("5.00")},
		{Nome: "Feijão", Quantidade: dec("4"), PrecoUnidade: decPtr("8.50")},
		// Sem preço: fora da soma, não zero.
		{Nome: "Sal", Quantidade: dec("100"), PrecoUnidade: nil},
	}
	assert.True(t, painel.ValorTotalEstoque(produtos).Equal(dec("84.00")))
}

func TestValorEstoquePorCategoria(t *testing.T) {
	produtos := []painel.ProdutoResumo{
		// Duas categorias: contribui para as duas.
		{Nome: "Arroz", Quantidade: dec("10"), PrecoUnidade: decPtr("5.00"), Categorias: []string{"Grãos", "Básicos"}},
		{Nome: "Feijão", Quantidade: dec("2"), PrecoUnidade: decPtr("8.00"), Categorias: []string{"Grãos"}},
		// Quantidade negativa derruba a categoria abaixo de zero: descartada.
		{Nome: "Óleo", Quantidade: dec("-3"), PrecoUnidade: decPtr("10.00"), Categorias: []string{"Gorduras"}},
		{Nome: "SemPreço", Quantidade: dec("50"), PrecoUnidade: nil, Categorias: []string{"Fantasma"}},
	}

	ranking := painel.ValorEstoquePorCategoria(produtos)
	require.Len(t, ranking, 2)
	assert.Equal(t, "Grãos", ranking[0].Categoria)
	assert.True(t, ranking[0].Valor.Equal(dec("66.00")))
	assert.Equal(t, "Básicos", ranking[1].Categoria)
	assert.True(t, ranking[1].Valor.Equal(dec("50.00")))
}

func TestValorEstoquePorCategoria_Top5(t *testing.T) {
	produtos := make([]painel.ProdutoResumo, 0, 7)
	nomes := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, n := range nomes {
		produtos = append(produtos, painel.ProdutoResumo{
			Nome:         n,
			Quantidade:   decimal.NewFromInt(int64(i + 1)),
			PrecoUnidade: decPtr("1.00"),
			Categorias:   []string{"cat-" + n},
		})
	}

	ranking := painel.ValorEstoquePorCategoria(produtos)
	require.Len(t, ranking, painel.TopN)
	// Maior valor primeiro; as duas menores (A e B) ficam de fora.
	assert.Equal(t, "cat-G", ranking[0].Categoria)
	assert.Equal(t, "cat-C", ranking[4].Categoria)
}

// ─────────────────────────────────────────────
// CMV
// ─────────────────────────────────────────────

func TestCMVReal_SomenteSaidas(t *testing.T) {
	movs := []painel.MovimentoValorado{
		mov(estoque.OperacaoSaida, "Arroz", "2", decPtr("3.00"), nil),        // 6.00
		mov(estoque.OperacaoSaida, "Feijão", "1", nil, decPtr("4.50")),       // 4.50
		mov(estoque.OperacaoEntrada, "Arroz", "100", decPtr("3.00"), nil),    // entrada: fora
		mov(estoque.OperacaoInventario, "Arroz", "50", nil, decPtr("3.00")),  // inventário: fora
		mov(estoque.OperacaoSaida, "Sal", "10", nil, nil),                    // sem preço: fora
	}
	assert.True(t, painel.CMVReal(movs).Equal(dec("10.50")))
}

func TestCMVPorCategoriaClassificacao(t *testing.T) {
	movs := []painel.MovimentoValorado{
		// Vendas de Grãos: 2×3 + 1×4.5 = 10.50
		mov(estoque.OperacaoSaida, "Arroz", "2", decPtr("3.00"), nil, "Grãos"),
		mov(estoque.OperacaoSaida, "Feijão", "1", nil, decPtr("4.50"), "Grãos"),
		// Desperdício de Grãos: 1×3 = 3.00
		mov(estoque.OperacaoSaida, "Arroz", "1", decPtr("3.00"), nil, "Grãos"),
		// Produto em duas categorias: a saída conta nas duas.
		mov(estoque.OperacaoSaida, "Azeite", "1", decPtr("20.00"), nil, "Gorduras", "Importados"),
	}
	movs[0].Classificacao = "Vendas"
	movs[1].Classificacao = "Vendas"
	movs[2].Classificacao = "Desperdício"
	movs[3].Classificacao = "Vendas"

	out := painel.CMVPorCategoriaClassificacao(movs)
	require.Len(t, out, 4)

	// Ordenado por total decrescente, desempate por nomes.
	assert.Equal(t, painel.CMVCategoria{Categoria: "Gorduras", Classificacao: "Vendas", Total: dec("20.00")}, out[0])
	assert.Equal(t, painel.CMVCategoria{Categoria: "Importados", Classificacao: "Vendas", Total: dec("20.00")}, out[1])
	assert.Equal(t, "Grãos", out[2].Categoria)
	assert.Equal(t, "Vendas", out[2].Classificacao)
	assert.True(t, out[2].Total.Equal(dec("10.50")))
	assert.Equal(t, "Desperdício", out[3].Classificacao)
	assert.True(t, out[3].Total.Equal(dec("3.00")))
}

// Produto fora do CMV não entra nas contas de CMV, mas continua presente no
// resto do painel: entradas, giro, volatilidade e ranking de movimentados.
func TestProdutoForaDoCMV_SoSaiDosAgregadosDeCMV(t *testing.T) {
	agora := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	saidaCMV := mov(estoque.OperacaoSaida, "Arroz", "2", decPtr("3.00"), nil, "Grãos")
	entradaEmbalagem := mov(estoque.OperacaoEntrada, "Embalagem", "10", decPtr("1.00"), nil, "Descartáveis")
	entradaEmbalagem.CMV = false
	saidaEmbalagem := mov(estoque.OperacaoSaida, "Embalagem", "4", decPtr("2.00"), nil, "Descartáveis")
	saidaEmbalagem.CMV = false

	movs := []painel.MovimentoValorado{saidaCMV, entradaEmbalagem, saidaEmbalagem}

	// CMV só vê o arroz: 2×3 = 6.
	assert.True(t, painel.CMVReal(movs).Equal(dec("6.00")))
	porCategoria := painel.CMVPorCategoriaClassificacao(movs)
	require.Len(t, porCategoria, 1)
	assert.Equal(t, "Grãos", porCategoria[0].Categoria)

	// O resto do painel vê o histórico inteiro.
	assert.True(t, painel.TotalEntradas(movs).Equal(dec("10.00")))
	assert.Contains(t, painel.MaioresMovimentados(movs, painel.TopN), "Embalagem")
	require.Len(t, painel.SerieGiro(movs, "Embalagem", 0, agora), 2)
	volatil := painel.VolatilidadePreco(movs, agora)
	require.Len(t, volatil, 1)
	assert.Equal(t, "Embalagem", volatil[0].NomeProduto)
}

func TestCMVPorCategoriaClassificacao_ClassificacaoVazia(t *testing.T) {
	m := mov(estoque.OperacaoSaida, "Arroz", "1", decPtr("3.00"), nil, "Grãos")
	out := painel.CMVPorCategoriaClassificacao([]painel.MovimentoValorado{m})
	require.Len(t, out, 1)
	assert.Equal(t, painel.SemClassificacao, out[0].Classificacao)
}

// ─────────────────────────────────────────────
// Entradas
// ─────────────────────────────────────────────

func TestEntradasPorClassificacao(t *testing.T) {
	compra := mov(estoque.OperacaoEntrada, "Arroz", "10", decPtr("3.00"), nil)
	compra.Classificacao = "Compras"
	producao := mov(estoque.OperacaoEntrada, "Pão", "5", decPtr("1.00"), nil)
	producao.Classificacao = "Produção"
	semClasse := mov(estoque.OperacaoEntrada, "Sal", "2", decPtr("2.00"), nil)
	saida := mov(estoque.OperacaoSaida, "Arroz", "1", decPtr("3.00"), nil)
	saida.Classificacao = "Vendas"

	out := painel.EntradasPorClassificacao([]painel.MovimentoValorado{compra, producao, semClasse, saida})
	require.Len(t, out, 3)
	assert.Equal(t, "Compras", out[0].Classificacao)
	assert.True(t, out[0].Total.Equal(dec("30.00")))
	assert.Equal(t, "Produção", out[1].Classificacao)
	assert.Equal(t, painel.SemClassificacao, out[2].Classificacao)
	assert.True(t, out[2].Total.Equal(dec("4.00")))
}

func TestTotalEntradas(t *testing.T) {
	movs := []painel.MovimentoValorado{
		mov(estoque.OperacaoEntrada, "Arroz", "10", decPtr("3.00"), nil),
		mov(estoque.OperacaoEntrada, "Sal", "5", nil, nil), // sem preço: fora
		mov(estoque.OperacaoSaida, "Arroz", "2", decPtr("3.00"), nil),
	}
	assert.True(t, painel.TotalEntradas(movs).Equal(dec("30.00")))
}

// ─────────────────────────────────────────────
// Giro
// ─────────────────────────────────────────────

func TestSerieGiro(t *testing.T) {
	agora := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	dia := func(d int) time.Time { return time.Date(2025, 6, d, 10, 0, 0, 0, time.UTC) }

	e1 := mov(estoque.OperacaoEntrada, "Arroz", "10", nil, nil)
	e1.Data = dia(10)
	s1 := mov(estoque.OperacaoSaida, "Arroz", "4", nil, nil)
	s1.Data = dia(12)
	inv := mov(estoque.OperacaoInventario, "Arroz", "20", nil, nil)
	inv.Data = dia(14)
	outro := mov(estoque.OperacaoEntrada, "Feijão", "99", nil, nil)
	outro.Data = dia(13)

	serie := painel.SerieGiro([]painel.MovimentoValorado{s1, inv, e1, outro}, "Arroz", 0, agora)
	require.Len(t, serie, 3)
	assert.True(t, serie[0].Nivel.Equal(dec("10")))
	assert.True(t, serie[1].Nivel.Equal(dec("6")))
	// Inventário sobrescreve o nível em vez de somar.
	assert.True(t, serie[2].Nivel.Equal(dec("20")))
}

func TestMaioresMovimentados(t *testing.T) {
	movs := []painel.MovimentoValorado{
		mov(estoque.OperacaoEntrada, "Arroz", "10", decPtr("3.00"), nil),  // 30
		mov(estoque.OperacaoSaida, "Arroz", "5", decPtr("3.00"), nil),     // +15 = 45
		mov(estoque.OperacaoEntrada, "Azeite", "2", decPtr("20.00"), nil), // 40
		mov(estoque.OperacaoEntrada, "Sal", "1", decPtr("2.00"), nil),     // 2
		mov(estoque.OperacaoEntrada, "SemPreço", "100", nil, nil),         // fora
	}

	nomes := painel.MaioresMovimentados(movs, 2)
	assert.Equal(t, []string{"Arroz", "Azeite"}, nomes)
}

// ─────────────────────────────────────────────
// Volatilidade de preço
// ─────────────────────────────────────────────

func TestVolatilidadePreco(t *testing.T) {
	agora := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	barato := mov(estoque.OperacaoEntrada, "Tomate", "1", decPtr("4.00"), nil)
	barato.Data = agora.AddDate(0, 0, -10)
	caro := mov(estoque.OperacaoEntrada, "Tomate", "1", decPtr("7.50"), nil)
	caro.Data = agora.AddDate(0, 0, -2)
	// Preço estável: spread zero, fica de fora.
	fixo1 := mov(estoque.OperacaoEntrada, "Sal", "1", decPtr("2.00"), nil)
	fixo1.Data = agora.AddDate(0, 0, -5)
	fixo2 := mov(estoque.OperacaoEntrada, "Sal", "1", decPtr("2.00"), nil)
	fixo2.Data = agora.AddDate(0, 0, -1)
	// Fora da janela de 30 dias, mesmo com spread enorme.
	antigo := mov(estoque.OperacaoEntrada, "Tomate", "1", decPtr("0.10"), nil)
	antigo.Data = agora.AddDate(0, 0, -45)

	out := painel.VolatilidadePreco([]painel.MovimentoValorado{barato, caro, fixo1, fixo2, antigo}, agora)
	require.Len(t, out, 1)
	assert.Equal(t, "Tomate", out[0].NomeProduto)
	assert.True(t, out[0].Minimo.Equal(dec("4.00")))
	assert.True(t, out[0].Maximo.Equal(dec("7.50")))
	assert.True(t, out[0].Variacao.Equal(dec("3.50")))
}

func TestVolatilidadePreco_OrdemETop5(t *testing.T) {
	agora := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	movs := make([]painel.MovimentoValorado, 0, 14)
	nomes := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, n := range nomes {
		base := mov(estoque.OperacaoEntrada, n, "1", decPtr("1.00"), nil)
		base.Data = agora.AddDate(0, 0, -3)
		pico := mov(estoque.OperacaoEntrada, n, "1", nil, nil)
		p := decimal.NewFromInt(int64(i + 2))
		pico.PrecoMovimentacao = &p
		pico.Data = agora.AddDate(0, 0, -1)
		movs = append(movs, base, pico)
	}

	out := painel.VolatilidadePreco(movs, agora)
	require.Len(t, out, painel.TopN)
	assert.Equal(t, "G", out[0].NomeProduto)
	assert.True(t, out[0].Variacao.Equal(dec("7")))
	assert.Equal(t, "C", out[4].NomeProduto)
}
