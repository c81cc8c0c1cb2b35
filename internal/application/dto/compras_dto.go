package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/domain/entity"
)

// CriarListaRequest body para POST /api/compras/listas.
type CriarListaRequest struct {
	Nome string `json:"nome"`
}

// AdicionarItemRequest body para POST /api/compras/listas/:id/itens.
// QtdComprar em texto pt-BR.
type AdicionarItemRequest struct {
	ProdutoID  string `json:"id_produto"`
	QtdComprar string `json:"qtd_comprar"`
}

// FinalizarListaRequest body para POST /api/compras/listas/:id/finalizar.
// Recebimento dd/mm/aaaa; quando RegistrarEntradas é true cada item vira uma
// entrada de Compras no diário.
type FinalizarListaRequest struct {
	Recebimento       string `json:"recebimento,omitempty"`
	RegistrarEntradas bool   `json:"registrar_entradas"`
}

// ListaComprasResponse lista de compras com itens consolidados.
type ListaComprasResponse struct {
	ID          string             `json:"id"`
	Nome        string             `json:"nome"`
	ValorTotal  decimal.Decimal    `json:"valor_total"`
	Itens       []entity.ItemLista `json:"itens"`
	Recebimento *time.Time         `json:"recebimento,omitempty"`
	Finalizada  bool               `json:"finalizada"`
	CriadoEm    time.Time          `json:"criado_em"`
}
