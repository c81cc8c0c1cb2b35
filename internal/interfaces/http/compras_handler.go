package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dipperr/foodflow/internal/application/compras"
	"github.com/dipperr/foodflow/internal/application/dto"
)

// ComprasHandler trata as requisições das listas de compras (protegido).
type ComprasHandler struct {
	uc *compras.ListaComprasUseCase
}

// NewComprasHandler constrói o handler.
func NewComprasHandler(uc *compras.ListaComprasUseCase) *ComprasHandler {
	return &ComprasHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir lista de compras
// @Description  Com sugerida=true a lista já nasce com os produtos abaixo do
// estoque mínimo e a diferença até o mínimo como quantidade a comprar.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sugerida  query  bool                  false  "Popular com produtos abaixo do mínimo"
// @Param        body      body   dto.CriarListaRequest true   "nome"
// @Success      201  {object}  dto.ListaComprasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/compras/listas [post]
func (h *ComprasHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarListaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	var (
		resp *dto.ListaComprasResponse
		err  error
	)
	if c.QueryBool("sugerida") {
		resp, err = h.uc.CriarSugerida(c.Context(), GetEmpresaID(c), in)
	} else {
		resp, err = h.uc.Criar(c.Context(), GetEmpresaID(c), in)
	}
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar listas de compras
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        abertas  query  bool  false  "Só listas não finalizadas"
// @Success      200  {array}  dto.ListaComprasResponse
// @Router       /api/compras/listas [get]
func (h *ComprasHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.Listar(c.Context(), GetEmpresaID(c), c.QueryBool("abertas"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Buscar lista de compras
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da lista"
// @Success      200  {object}  dto.ListaComprasResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/listas/{id} [get]
func (h *ComprasHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Buscar(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// AddItem godoc
// @Summary      Adicionar item à lista
// @Description  Inclusão consolidada por produto: repetir o id substitui a
// quantidade a comprar em vez de duplicar a linha.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID da lista"
// @Param        body  body  dto.AdicionarItemRequest  true  "id_produto, qtd_comprar (pt-BR)"
// @Success      200   {object}  dto.ListaComprasResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras/listas/{id}/itens [post]
func (h *ComprasHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AdicionarItemRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resp, err := h.uc.AdicionarItem(c.Context(), GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// RemoveItem godoc
// @Summary      Remover item da lista
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id          path  string  true  "ID da lista"
// @Param        id_produto  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ListaComprasResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/listas/{id}/itens/{id_produto} [delete]
func (h *ComprasHandler) RemoveItem(c *fiber.Ctx) error {
	resp, err := h.uc.RemoverItem(c.Context(), GetEmpresaID(c), c.Params("id"), c.Params("id_produto"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// Finalize godoc
// @Summary      Finalizar lista de compras
// @Description  Fecha a lista; com registrar_entradas cada item vira uma
// entrada de Compras no diário, idempotente por lista+produto.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID da lista"
// @Param        body  body  dto.FinalizarListaRequest  true  "recebimento, registrar_entradas"
// @Success      200   {object}  dto.ListaComprasResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras/listas/{id}/finalizar [post]
func (h *ComprasHandler) Finalize(c *fiber.Ctx) error {
	var in dto.FinalizarListaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resp, err := h.uc.Finalizar(c.Context(), GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// ExportPDF godoc
// @Summary      Exportar lista de compras em PDF
// @Tags         compras
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da lista"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/listas/{id}/pdf [get]
func (h *ComprasHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportarPDF(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lista-compras.pdf"`)
	return c.Send(pdfBytes)
}

// Delete godoc
// @Summary      Remover lista de compras
// @Tags         compras
// @Security     Bearer
// @Param        id  path  string  true  "ID da lista"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/listas/{id} [delete]
func (h *ComprasHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), GetEmpresaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
