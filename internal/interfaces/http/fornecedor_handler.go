package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/application/usecase"
)

// FornecedorHandler trata as requisições de fornecedores (protegido).
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FornecedorRequest  true  "nome, nome_vendedor, telefone"
// @Success      201   {object}  dto.FornecedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fornecedores [post]
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resp, err := h.uc.Criar(c.Context(), GetEmpresaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar fornecedores da empresa
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FornecedorResponse
// @Router       /api/fornecedores [get]
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.Listar(c.Context(), GetEmpresaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Editar fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID do fornecedor"
// @Param        body  body  dto.FornecedorRequest  true  "nome, nome_vendedor, telefone"
// @Success      200   {object}  dto.FornecedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [put]
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resp, err := h.uc.Atualizar(c.Context(), GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Remover fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Param        id  path  string  true  "ID do fornecedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [delete]
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), GetEmpresaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
