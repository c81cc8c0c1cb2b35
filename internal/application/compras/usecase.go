// Package compras gerencia listas de compras: consolidação de itens,
// totalização, finalização com registro opcional das entradas e exportação
// em PDF.
package compras

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/application/ledger"
	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/moeda"
	"github.com/dipperr/foodflow/internal/domain/repository"
)

// GeradorPDF porta de exportação da lista em PDF.
type GeradorPDF interface {
	GerarListaCompras(lista *entity.ListaCompras) ([]byte, error)
}

// ListaComprasUseCase casos de uso das listas de compras.
type ListaComprasUseCase struct {
	listaRepo   repository.ListaComprasRepository
	produtoRepo repository.ProdutoRepository
	registrar   *ledger.RegistrarMovimentacaoUseCase
	pdf         GeradorPDF
	tzOffset    string
	log         zerolog.Logger
}

// NewListaComprasUseCase constrói o caso de uso.
func NewListaComprasUseCase(
	listaRepo repository.ListaComprasRepository,
	produtoRepo repository.ProdutoRepository,
	registrar *ledger.RegistrarMovimentacaoUseCase,
	pdf GeradorPDF,
	tzOffset string,
	log zerolog.Logger,
) *ListaComprasUseCase {
	return &ListaComprasUseCase{
		listaRepo:   listaRepo,
		produtoRepo: produtoRepo,
		registrar:   registrar,
		pdf:         pdf,
		tzOffset:    tzOffset,
		log:         log,
	}
}

// Criar abre uma lista vazia.
func (uc *ListaComprasUseCase) Criar(
	ctx context.Context, empresaID string, in dto.CriarListaRequest,
) (*dto.ListaComprasResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrEntradaInvalida)
	}
	lista := &entity.ListaCompras{
		ID:         uuid.New().String(),
		EmpresaID:  empresaID,
		Nome:       in.Nome,
		ValorTotal: decimal.Zero,
		Itens:      []entity.ItemLista{},
		CriadoEm:   time.Now(),
	}
	if err := uc.listaRepo.Criar(ctx, lista); err != nil {
		return nil, err
	}
	return paraListaResponse(lista), nil
}

// CriarSugerida abre uma lista já populada com os produtos abaixo do estoque
// mínimo, sugerindo comprar a diferença até o mínimo.
func (uc *ListaComprasUseCase) CriarSugerida(
	ctx context.Context, empresaID string, in dto.CriarListaRequest,
) (*dto.ListaComprasResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrEntradaInvalida)
	}
	produtos, err := uc.produtoRepo.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	lista := &entity.ListaCompras{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      in.Nome,
		Itens:     []entity.ItemLista{},
		CriadoEm:  time.Now(),
	}
	for _, p := range produtos {
		if !p.AbaixoDoMinimo() {
			continue
		}
		lista.Itens = append(lista.Itens, itemDoProduto(p, p.EstoqueMinimo.Sub(p.Quantidade)))
	}
	lista.ValorTotal = totalDaLista(lista.Itens)
	if err := uc.listaRepo.Criar(ctx, lista); err != nil {
		return nil, err
	}
	return paraListaResponse(lista), nil
}

// AdicionarItem acrescenta um produto à lista. A inclusão é consolidada por
// produto: adicionar um id já presente substitui a quantidade a comprar em
// vez de duplicar a linha.
func (uc *ListaComprasUseCase) AdicionarItem(
	ctx context.Context, empresaID, listaID string, in dto.AdicionarItemRequest,
) (*dto.ListaComprasResponse, error) {
	lista, err := uc.listaAberta(ctx, empresaID, listaID)
	if err != nil {
		return nil, err
	}
	qtd, err := moeda.ParseDecimalBR(in.QtdComprar)
	if err != nil {
		return nil, err
	}
	if !qtd.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantidade a comprar deve ser maior que zero", domain.ErrEntradaInvalida)
	}
	produto, err := uc.produtoRepo.BuscarPorID(ctx, empresaID, in.ProdutoID)
	if err != nil {
		return nil, err
	}

	substituido := false
	for i := range lista.Itens {
		if lista.Itens[i].IDProduto == produto.ID {
			lista.Itens[i].QtdComprar = qtd
			substituido = true
			break
		}
	}
	if !substituido {
		lista.Itens = append(lista.Itens, itemDoProduto(produto, qtd))
	}
	lista.ValorTotal = totalDaLista(lista.Itens)

	if err := uc.listaRepo.Atualizar(ctx, lista); err != nil {
		return nil, err
	}
	return paraListaResponse(lista), nil
}

// RemoverItem tira um produto da lista e refaz o total.
func (uc *ListaComprasUseCase) RemoverItem(
	ctx context.Context, empresaID, listaID, produtoID string,
) (*dto.ListaComprasResponse, error) {
	lista, err := uc.listaAberta(ctx, empresaID, listaID)
	if err != nil {
		return nil, err
	}
	itens := lista.Itens[:0]
	for _, item := range lista.Itens {
		if item.IDProduto != produtoID {
			itens = append(itens, item)
		}
	}
	lista.Itens = itens
	lista.ValorTotal = totalDaLista(lista.Itens)

	if err := uc.listaRepo.Atualizar(ctx, lista); err != nil {
		return nil, err
	}
	return paraListaResponse(lista), nil
}

// Finalizar fecha a lista. Com RegistrarEntradas, cada item vira uma entrada
// de Compras no diário, com chave de idempotência derivada da lista para o
// reenvio do finalizar não duplicar lançamentos.
func (uc *ListaComprasUseCase) Finalizar(
	ctx context.Context, empresaID, listaID string, in dto.FinalizarListaRequest,
) (*dto.ListaComprasResponse, error) {
	lista, err := uc.listaAberta(ctx, empresaID, listaID)
	if err != nil {
		return nil, err
	}

	recebimento := time.Now()
	if in.Recebimento != "" {
		recebimento, err = moeda.ParseSomenteDataBR(in.Recebimento, uc.tzOffset)
		if err != nil {
			return nil, err
		}
	}

	if in.RegistrarEntradas {
		for _, item := range lista.Itens {
			req := dto.RegistrarMovimentacaoRequest{
				ProdutoID:         item.IDProduto,
				Operacao:          "entrada",
				Quantidade:        formatarNumeroBR(item.QtdComprar),
				Classificacao:     "Compras",
				Informacoes:       fmt.Sprintf("recebimento da lista %s", lista.Nome),
				ChaveIdempotencia: fmt.Sprintf("lista:%s:%s", lista.ID, item.IDProduto),
			}
			if item.Preco != nil {
				req.Preco = formatarBR(*item.Preco)
			}
			if _, err := uc.registrar.Registrar(ctx, empresaID, req); err != nil {
				return nil, fmt.Errorf("entrada do item %s: %w", item.Nome, err)
			}
		}
	}

	lista.Finalizada = true
	lista.Recebimento = &recebimento
	if err := uc.listaRepo.Atualizar(ctx, lista); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("empresa_id", empresaID).
		Str("lista_id", lista.ID).
		Bool("entradas_registradas", in.RegistrarEntradas).
		Int("itens", len(lista.Itens)).
		Msg("lista de compras finalizada")

	return paraListaResponse(lista), nil
}

// Buscar devolve uma lista da empresa.
func (uc *ListaComprasUseCase) Buscar(
	ctx context.Context, empresaID, listaID string,
) (*dto.ListaComprasResponse, error) {
	lista, err := uc.listaRepo.BuscarPorID(ctx, empresaID, listaID)
	if err != nil {
		return nil, err
	}
	return paraListaResponse(lista), nil
}

// Listar devolve as listas da empresa, opcionalmente só as abertas.
func (uc *ListaComprasUseCase) Listar(
	ctx context.Context, empresaID string, somenteAbertas bool,
) ([]dto.ListaComprasResponse, error) {
	listas, err := uc.listaRepo.ListarPorEmpresa(ctx, empresaID, somenteAbertas)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListaComprasResponse, 0, len(listas))
	for _, l := range listas {
		out = append(out, *paraListaResponse(l))
	}
	return out, nil
}

// Remover apaga uma lista.
func (uc *ListaComprasUseCase) Remover(ctx context.Context, empresaID, listaID string) error {
	return uc.listaRepo.Remover(ctx, empresaID, listaID)
}

// ExportarPDF gera o PDF da lista.
func (uc *ListaComprasUseCase) ExportarPDF(ctx context.Context, empresaID, listaID string) ([]byte, error) {
	lista, err := uc.listaRepo.BuscarPorID(ctx, empresaID, listaID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GerarListaCompras(lista)
}

// listaAberta busca a lista e rejeita operações sobre lista já finalizada.
func (uc *ListaComprasUseCase) listaAberta(
	ctx context.Context, empresaID, listaID string,
) (*entity.ListaCompras, error) {
	lista, err := uc.listaRepo.BuscarPorID(ctx, empresaID, listaID)
	if err != nil {
		return nil, err
	}
	if lista.Finalizada {
		return nil, domain.ErrListaFinalizada
	}
	return lista, nil
}

func itemDoProduto(p *entity.Produto, qtdComprar decimal.Decimal) entity.ItemLista {
	return entity.ItemLista{
		IDProduto:     p.ID,
		Nome:          p.Nome,
		Unidade:       p.UnidadeAbrev(),
		Quantidade:    p.Quantidade,
		QtdComprar:    qtdComprar,
		EstoqueMinimo: p.EstoqueMinimo,
		Preco:         p.PrecoUnidade,
		Categorias:    p.Categorias,
	}
}

func totalDaLista(itens []entity.ItemLista) decimal.Decimal {
	total := decimal.Zero
	for _, item := range itens {
		if v := item.ValorItem(); v != nil {
			total = total.Add(*v)
		}
	}
	return total
}

func paraListaResponse(l *entity.ListaCompras) *dto.ListaComprasResponse {
	return &dto.ListaComprasResponse{
		ID:          l.ID,
		Nome:        l.Nome,
		ValorTotal:  l.ValorTotal,
		Itens:       l.Itens,
		Recebimento: l.Recebimento,
		Finalizada:  l.Finalizada,
		CriadoEm:    l.CriadoEm,
	}
}

// formatarBR converte um decimal para o formato de formulário pt-BR, que é o
// que o caso de uso do diário espera na entrada.
func formatarBR(d decimal.Decimal) string {
	return moeda.PrefixoMoeda + formatarNumeroBR(d)
}

// formatarNumeroBR preserva a precisão inteira do decimal: quantidades como
// 0.125 kg precisam voltar do diário exatamente como foram compradas.
func formatarNumeroBR(d decimal.Decimal) string {
	// troca o ponto decimal por vírgula; sem separador de milhar
	return strings.ReplaceAll(d.String(), ".", ",")
}
