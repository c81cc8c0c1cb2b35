package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/application/usecase"
)

// ProdutoHandler trata as requisições de produtos (protegido).
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar produto
// @Description  Cria o produto e, se houver quantidade inicial, registra a
// entrada correspondente no diário na mesma transação.
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "nome, unidade, quantidade, estoque_minimo, preco (pt-BR)"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
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
// @Summary      Listar produtos da empresa
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.Listar(c.Context(), GetEmpresaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Buscar produto
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Buscar(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Editar cadastro do produto
// @Description  Atualiza os campos de cadastro. A quantidade não é editável:
// estoque só muda via movimentação.
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID do produto"
// @Param        body  body  dto.AtualizarProdutoRequest  true  "campos de cadastro"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarProdutoRequest
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
// @Summary      Remover produto
// @Tags         produtos
// @Security     Bearer
// @Param        id  path  string  true  "ID do produto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), GetEmpresaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
