// Package pdf gera a versão imprimível da lista de compras, para levar ao
// mercado ou enviar ao fornecedor.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da lista  │  Data de criação                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Unid. | Qtd. | Preço | Valor             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL ESTIMADO                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/application/compras"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/moeda"
)

var (
	corPrimaria = &props.Color{Red: 27, Green: 94, Blue: 32}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ compras.GeradorPDF = (*MarotoListaCompras)(nil)

// MarotoListaCompras implementa compras.GeradorPDF usando Maroto v2.
type MarotoListaCompras struct{}

// NewMarotoListaCompras constrói o gerador.
func NewMarotoListaCompras() *MarotoListaCompras { return &MarotoListaCompras{} }

// GerarListaCompras gera o PDF da lista e devolve os bytes.
func (g *MarotoListaCompras) GerarListaCompras(lista *entity.ListaCompras) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Compras", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(lista))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))

	m.AddRows(tabelaCabecalhoRow())
	for _, r := range tabelaItemRows(lista.Itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(totalRow(lista.ValorTotal))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// cabecalhoRow: nome da lista (esq) e data de criação (dir).
func cabecalhoRow(lista *entity.ListaCompras) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("LISTA DE COMPRAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(lista.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Criada em: "+lista.CriadoEm.Format(moeda.LayoutDataBR), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: corCinza,
			}),
			text.New(fmt.Sprintf("%d itens", len(lista.Itens)), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: corCinza,
			}),
		),
	)
}

// tabelaCabecalhoRow: cabeçalho da tabela de itens.
func tabelaCabecalhoRow() core.Row {
	h := func(rotulo string, tamanho int, a align.Type) core.Col {
		return col.New(tamanho).Add(text.New(rotulo, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 5, align.Left),
		h("Unid.", 1, align.Center),
		h("Qtd.", 2, align.Right),
		h("Preço", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// tabelaItemRows: uma linha por item; itens sem preço saem com traço.
func tabelaItemRows(itens []entity.ItemLista) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, item := range itens {
		preco, valor := "—", "—"
		if item.Preco != nil {
			preco = moedaBR(*item.Preco)
		}
		if v := item.ValorItem(); v != nil {
			valor = moedaBR(*v)
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				item.Nome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				item.Unidade,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				item.QtdComprar.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				preco,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				valor,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total estimado à direita.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New(moedaBR(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Right: 1, Top: 2,
		})),
	)
}

// moedaBR formata um decimal como "R$ 1234,50" (vírgula decimal).
func moedaBR(d decimal.Decimal) string {
	s := d.StringFixed(2)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			s = s[:i] + "," + s[i+1:]
			break
		}
	}
	return moeda.PrefixoMoeda + s
}
