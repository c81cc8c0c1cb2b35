package compras_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipperr/foodflow/internal/application/compras"
	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/application/ledger"
	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

const (
	empresaTeste = "empresa-1"
	fusoTeste    = "-04:00"
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

// ─────────────────────────────────────────────
// Dublês em memória
// ─────────────────────────────────────────────

type listaRepoFake struct {
	listas map[string]*entity.ListaCompras
}

func novaListaRepoFake() *listaRepoFake {
	return &listaRepoFake{listas: map[string]*entity.ListaCompras{}}
}

func (r *listaRepoFake) Criar(_ context.Context, l *entity.ListaCompras) error {
	copia := *l
	r.listas[l.ID] = &copia
	return nil
}

func (r *listaRepoFake) BuscarPorID(_ context.Context, empresaID, id string) (*entity.ListaCompras, error) {
	l, ok := r.listas[id]
	if !ok || l.EmpresaID != empresaID {
		return nil, domain.ErrNaoEncontrado
	}
	copia := *l
	return &copia, nil
}

func (r *listaRepoFake) ListarPorEmpresa(_ context.Context, empresaID string, somenteAbertas bool) ([]*entity.ListaCompras, error) {
	var out []*entity.ListaCompras
	for _, l := range r.listas {
		if l.EmpresaID != empresaID {
			continue
		}
		if somenteAbertas && l.Finalizada {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *listaRepoFake) Atualizar(_ context.Context, l *entity.ListaCompras) error {
	if _, ok := r.listas[l.ID]; !ok {
		return domain.ErrNaoEncontrado
	}
	copia := *l
	r.listas[l.ID] = &copia
	return nil
}

func (r *listaRepoFake) Remover(_ context.Context, _, id string) error {
	delete(r.listas, id)
	return nil
}

type produtoRepoFake struct {
	produtos map[string]*entity.Produto
}

func (r *produtoRepoFake) Criar(_ context.Context, p *entity.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *produtoRepoFake) BuscarPorID(_ context.Context, empresaID, id string) (*entity.Produto, error) {
	p, ok := r.produtos[id]
	if !ok || p.EmpresaID != empresaID {
		return nil, domain.ErrNaoEncontrado
	}
	copia := *p
	return &copia, nil
}

func (r *produtoRepoFake) BuscarParaAtualizar(ctx context.Context, empresaID, id string) (*entity.Produto, error) {
	return r.BuscarPorID(ctx, empresaID, id)
}

func (r *produtoRepoFake) ListarPorEmpresa(_ context.Context, empresaID string) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range r.produtos {
		if p.EmpresaID == empresaID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *produtoRepoFake) Atualizar(_ context.Context, p *entity.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *produtoRepoFake) AtualizarQuantidade(_ context.Context, empresaID, id string, quantidade decimal.Decimal) error {
	p, ok := r.produtos[id]
	if !ok || p.EmpresaID != empresaID {
		return domain.ErrNaoEncontrado
	}
	p.Quantidade = quantidade
	return nil
}

func (r *produtoRepoFake) Remover(_ context.Context, _, id string) error {
	delete(r.produtos, id)
	return nil
}

type movRepoFake struct {
	movs []*entity.Movimentacao
}

func (r *movRepoFake) Criar(_ context.Context, mov *entity.Movimentacao) error {
	if mov.ChaveIdempotencia != "" {
		for _, m := range r.movs {
			if m.EmpresaID == mov.EmpresaID && m.ChaveIdempotencia == mov.ChaveIdempotencia {
				return fmt.Errorf("%w: chave de idempotência repetida", domain.ErrDuplicado)
			}
		}
	}
	copia := *mov
	r.movs = append(r.movs, &copia)
	return nil
}

func (r *movRepoFake) BuscarPorID(_ context.Context, empresaID, id string) (*entity.Movimentacao, error) {
	for _, m := range r.movs {
		if m.EmpresaID == empresaID && m.ID == id {
			copia := *m
			return &copia, nil
		}
	}
	return nil, domain.ErrNaoEncontrado
}

func (r *movRepoFake) BuscarPorChaveIdempotencia(_ context.Context, empresaID, chave string) (*entity.Movimentacao, error) {
	for _, m := range r.movs {
		if m.EmpresaID == empresaID && m.ChaveIdempotencia == chave {
			copia := *m
			return &copia, nil
		}
	}
	return nil, domain.ErrNaoEncontrado
}

func (r *movRepoFake) Listar(_ context.Context, empresaID string, _ repository.FiltroMovimentacoes) ([]*entity.Movimentacao, error) {
	return r.movs, nil
}

func (r *movRepoFake) Atualizar(_ context.Context, mov *entity.Movimentacao) error {
	for i, m := range r.movs {
		if m.EmpresaID == mov.EmpresaID && m.ID == mov.ID {
			copia := *mov
			r.movs[i] = &copia
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

func (r *movRepoFake) Remover(_ context.Context, empresaID, id string) error {
	return domain.ErrNaoEncontrado
}

type txRunnerFake struct {
	movRepo     repository.MovimentacaoRepository
	produtoRepo repository.ProdutoRepository
}

func (t *txRunnerFake) Run(_ context.Context, fn func(repository.MovimentacaoRepository, repository.ProdutoRepository) error) error {
	return fn(t.movRepo, t.produtoRepo)
}

type pdfFake struct{ chamadas int }

func (p *pdfFake) GerarListaCompras(_ *entity.ListaCompras) ([]byte, error) {
	p.chamadas++
	return []byte("%PDF-1.7"), nil
}

type ambiente struct {
	uc          *compras.ListaComprasUseCase
	listaRepo   *listaRepoFake
	produtoRepo *produtoRepoFake
	movRepo     *movRepoFake
	pdf         *pdfFake
}

func novoAmbiente(produtos ...*entity.Produto) *ambiente {
	produtoRepo := &produtoRepoFake{produtos: map[string]*entity.Produto{}}
	for _, p := range produtos {
		produtoRepo.produtos[p.ID] = p
	}
	movRepo := &movRepoFake{}
	tx := &txRunnerFake{movRepo: movRepo, produtoRepo: produtoRepo}
	registrar := ledger.NewRegistrarMovimentacaoUseCase(tx, produtoRepo, movRepo, fusoTeste, zerolog.Nop())
	listaRepo := novaListaRepoFake()
	pdf := &pdfFake{}
	uc := compras.NewListaComprasUseCase(listaRepo, produtoRepo, registrar, pdf, fusoTeste, zerolog.Nop())
	return &ambiente{uc: uc, listaRepo: listaRepo, produtoRepo: produtoRepo, movRepo: movRepo, pdf: pdf}
}

func produtoTeste(id, nome string, quantidade, minimo string, preco *decimal.Decimal) *entity.Produto {
	return &entity.Produto{
		ID:            id,
		EmpresaID:     empresaTeste,
		Nome:          nome,
		Unidade:       "quilograma (kg)",
		Quantidade:    dec(quantidade),
		EstoqueMinimo: dec(minimo),
		PrecoUnidade:  preco,
	}
}

// ─────────────────────────────────────────────
// Criação e consolidação de itens
// ─────────────────────────────────────────────

func TestCriarLista(t *testing.T) {
	amb := novoAmbiente()

	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira da semana"})
	require.NoError(t, err)

	assert.Equal(t, "feira da semana", lista.Nome)
	assert.Empty(t, lista.Itens)
	assert.True(t, lista.ValorTotal.IsZero())
	assert.False(t, lista.Finalizada)
	assert.Nil(t, lista.Recebimento)
}

func TestCriarLista_NomeObrigatorio(t *testing.T) {
	amb := novoAmbiente()
	_, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestAdicionarItem_ConsolidaPorProduto(t *testing.T) {
	amb := novoAmbiente(
		produtoTeste("p1", "Arroz", "2", "5", decPtr("4.00")),
		produtoTeste("p2", "Feijão", "1", "3", decPtr("3.00")),
	)
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira"})
	require.NoError(t, err)

	lista, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: "2"})
	require.NoError(t, err)
	lista, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p2", QtdComprar: "1"})
	require.NoError(t, err)
	// 2×4 + 1×3 = 11
	assert.True(t, lista.ValorTotal.Equal(dec("11.00")))

	// Repetir o produto substitui a quantidade, não duplica a linha.
	lista, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: "5"})
	require.NoError(t, err)

	require.Len(t, lista.Itens, 2)
	assert.True(t, lista.Itens[0].QtdComprar.Equal(dec("5")))
	// 5×4 + 1×3 = 23
	assert.True(t, lista.ValorTotal.Equal(dec("23.00")))
}

func TestAdicionarItem_ItemSemPrecoForaDoTotal(t *testing.T) {
	amb := novoAmbiente(
		produtoTeste("p1", "Arroz", "2", "5", decPtr("4.00")),
		produtoTeste("p2", "Sal", "1", "3", nil),
	)
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira"})
	require.NoError(t, err)

	lista, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: "2"})
	require.NoError(t, err)
	lista, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p2", QtdComprar: "10"})
	require.NoError(t, err)

	require.Len(t, lista.Itens, 2)
	assert.True(t, lista.ValorTotal.Equal(dec("8.00")))
}

func TestAdicionarItem_QuantidadeInvalida(t *testing.T) {
	amb := novoAmbiente(produtoTeste("p1", "Arroz", "2", "5", decPtr("4.00")))
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira"})
	require.NoError(t, err)

	for _, qtd := range []string{"0", "-1", "", "x"} {
		t.Run("qtd="+qtd, func(t *testing.T) {
			_, err := amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: qtd})
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
}

func TestRemoverItem_RefazOTotal(t *testing.T) {
	amb := novoAmbiente(
		produtoTeste("p1", "Arroz", "2", "5", decPtr("4.00")),
		produtoTeste("p2", "Feijão", "1", "3", decPtr("3.00")),
	)
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira"})
	require.NoError(t, err)
	_, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: "2"})
	require.NoError(t, err)
	_, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p2", QtdComprar: "1"})
	require.NoError(t, err)

	lista, err = amb.uc.RemoverItem(context.Background(), empresaTeste, lista.ID, "p1")
	require.NoError(t, err)

	require.Len(t, lista.Itens, 1)
	assert.Equal(t, "p2", lista.Itens[0].IDProduto)
	assert.True(t, lista.ValorTotal.Equal(dec("3.00")))
}

// ─────────────────────────────────────────────
// Lista sugerida
// ─────────────────────────────────────────────

func TestCriarSugerida_SoProdutosAbaixoDoMinimo(t *testing.T) {
	amb := novoAmbiente(
		produtoTeste("p1", "Arroz", "2", "5", decPtr("4.00")),   // abaixo: sugere 3
		produtoTeste("p2", "Feijão", "10", "3", decPtr("3.00")), // acima: fora
		produtoTeste("p3", "Sal", "0", "2", nil),                // abaixo: sugere 2, sem preço
	)

	lista, err := amb.uc.CriarSugerida(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "reposição"})
	require.NoError(t, err)

	require.Len(t, lista.Itens, 2)
	porProduto := map[string]decimal.Decimal{}
	for _, item := range lista.Itens {
		porProduto[item.IDProduto] = item.QtdComprar
	}
	assert.True(t, porProduto["p1"].Equal(dec("3")))
	assert.True(t, porProduto["p3"].Equal(dec("2")))
	// Só o arroz tem preço: 3×4 = 12.
	assert.True(t, lista.ValorTotal.Equal(dec("12.00")))
}

// ─────────────────────────────────────────────
// Finalização
// ─────────────────────────────────────────────

func TestFinalizar_RegistraEntradasNoDiario(t *testing.T) {
	amb := novoAmbiente(produtoTeste("p1", "Arroz", "2", "5", decPtr("4.00")))
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira"})
	require.NoError(t, err)
	_, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: "3"})
	require.NoError(t, err)

	lista, err = amb.uc.Finalizar(context.Background(), empresaTeste, lista.ID, dto.FinalizarListaRequest{
		Recebimento:       "15/06/2025",
		RegistrarEntradas: true,
	})
	require.NoError(t, err)

	assert.True(t, lista.Finalizada)
	require.NotNil(t, lista.Recebimento)
	assert.Equal(t, 15, lista.Recebimento.Day())

	// A entrada foi lançada com classificação Compras e o nível subiu 2 -> 5.
	require.Len(t, amb.movRepo.movs, 1)
	mov := amb.movRepo.movs[0]
	assert.Equal(t, "entrada", mov.Operacao)
	require.NotNil(t, mov.Classificacao)
	assert.Equal(t, "Compras", *mov.Classificacao)
	require.NotNil(t, mov.PrecoMovimentacao)
	assert.True(t, mov.PrecoMovimentacao.Equal(dec("4.00")))
	assert.True(t, amb.produtoRepo.produtos["p1"].Quantidade.Equal(dec("5")))
}

func TestFinalizar_QuantidadeFracionadaSemArredondamento(t *testing.T) {
	amb := novoAmbiente(produtoTeste("p1", "Açafrão", "1", "2", decPtr("35.90")))
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "temperos"})
	require.NoError(t, err)
	_, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: "0,125"})
	require.NoError(t, err)

	_, err = amb.uc.Finalizar(context.Background(), empresaTeste, lista.ID, dto.FinalizarListaRequest{RegistrarEntradas: true})
	require.NoError(t, err)

	// A quantidade chega ao diário com a precisão comprada, sem arredondar.
	require.Len(t, amb.movRepo.movs, 1)
	assert.True(t, amb.movRepo.movs[0].Quantidade.Equal(dec("0.125")))
	assert.True(t, amb.produtoRepo.produtos["p1"].Quantidade.Equal(dec("1.125")))
}

func TestFinalizar_SemRegistrarEntradas(t *testing.T) {
	amb := novoAmbiente(produtoTeste("p1", "Arroz", "2", "5", decPtr("4.00")))
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira"})
	require.NoError(t, err)
	_, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: "3"})
	require.NoError(t, err)

	lista, err = amb.uc.Finalizar(context.Background(), empresaTeste, lista.ID, dto.FinalizarListaRequest{})
	require.NoError(t, err)

	assert.True(t, lista.Finalizada)
	assert.Empty(t, amb.movRepo.movs)
	assert.True(t, amb.produtoRepo.produtos["p1"].Quantidade.Equal(dec("2")))
}

func TestFinalizar_ListaJaFinalizada(t *testing.T) {
	amb := novoAmbiente()
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira"})
	require.NoError(t, err)

	_, err = amb.uc.Finalizar(context.Background(), empresaTeste, lista.ID, dto.FinalizarListaRequest{})
	require.NoError(t, err)

	_, err = amb.uc.Finalizar(context.Background(), empresaTeste, lista.ID, dto.FinalizarListaRequest{})
	assert.ErrorIs(t, err, domain.ErrListaFinalizada)

	// Itens também não entram em lista fechada.
	_, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: "1"})
	assert.ErrorIs(t, err, domain.ErrListaFinalizada)
}

func TestFinalizar_ReenvioNaoDuplicaEntradas(t *testing.T) {
	amb := novoAmbiente(produtoTeste("p1", "Arroz", "2", "5", decPtr("4.00")))
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira"})
	require.NoError(t, err)
	_, err = amb.uc.AdicionarItem(context.Background(), empresaTeste, lista.ID, dto.AdicionarItemRequest{ProdutoID: "p1", QtdComprar: "3"})
	require.NoError(t, err)

	_, err = amb.uc.Finalizar(context.Background(), empresaTeste, lista.ID, dto.FinalizarListaRequest{RegistrarEntradas: true})
	require.NoError(t, err)

	// Simula o reenvio do finalizar depois de uma falha de rede: a lista foi
	// reaberta no estado salvo mas as entradas já existem no diário.
	salva := amb.listaRepo.listas[lista.ID]
	salva.Finalizada = false
	salva.Recebimento = nil

	_, err = amb.uc.Finalizar(context.Background(), empresaTeste, lista.ID, dto.FinalizarListaRequest{RegistrarEntradas: true})
	require.NoError(t, err)

	assert.Len(t, amb.movRepo.movs, 1)
	assert.True(t, amb.produtoRepo.produtos["p1"].Quantidade.Equal(dec("5")))
}

// ─────────────────────────────────────────────
// Exportação
// ─────────────────────────────────────────────

func TestExportarPDF(t *testing.T) {
	amb := novoAmbiente()
	lista, err := amb.uc.Criar(context.Background(), empresaTeste, dto.CriarListaRequest{Nome: "feira"})
	require.NoError(t, err)

	conteudo, err := amb.uc.ExportarPDF(context.Background(), empresaTeste, lista.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, conteudo)
	assert.Equal(t, 1, amb.pdf.chamadas)

	_, err = amb.uc.ExportarPDF(context.Background(), empresaTeste, "lista-fantasma")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
