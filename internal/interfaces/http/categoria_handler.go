package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/application/usecase"
)

// CategoriaHandler trata as requisições de categorias (protegido).
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler constrói o handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar categoria
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaRequest  true  "nome, cor"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
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
// @Summary      Listar categorias da empresa
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.Listar(c.Context(), GetEmpresaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Remover categoria
// @Tags         categorias
// @Security     Bearer
// @Param        id  path  string  true  "ID da categoria"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [delete]
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), GetEmpresaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
