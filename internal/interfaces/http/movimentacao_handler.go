package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/application/ledger"
)

// MovimentacaoHandler trata as requisições do diário de movimentações
// (protegido).
type MovimentacaoHandler struct {
	registrar *ledger.RegistrarMovimentacaoUseCase
	atualizar *ledger.AtualizarMovimentacaoUseCase
	listar    *ledger.ListarMovimentacoesUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(
	registrar *ledger.RegistrarMovimentacaoUseCase,
	atualizar *ledger.AtualizarMovimentacaoUseCase,
	listar *ledger.ListarMovimentacoesUseCase,
) *MovimentacaoHandler {
	return &MovimentacaoHandler{registrar: registrar, atualizar: atualizar, listar: listar}
}

// Register godoc
// @Summary      Registrar lançamento no diário
// @Description  Entrada soma, saída subtrai e inventário sobrescreve o nível
// do produto; tudo na mesma transação. Requisições com a mesma
// chave_idempotencia devolvem o lançamento original.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "id_produto, operacao, quantidade (pt-BR)"
// @Success      201   {object}  dto.RegistrarMovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Register(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resp, err := h.registrar.Registrar(c.Context(), GetEmpresaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar histórico de movimentações
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id_produto  query  string  false  "Filtrar por produto"
// @Param        de          query  string  false  "Data inicial dd/mm/aaaa"
// @Param        ate         query  string  false  "Data final dd/mm/aaaa (inclusiva)"
// @Success      200  {array}   dto.MovimentacaoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	var in dto.ListarMovimentacoesRequest
	if err := c.QueryParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resp, err := h.listar.Listar(c.Context(), GetEmpresaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Editar metadados de um lançamento
// @Description  Só classificação, preço, validade e informações mudam. O
// nível de estoque do produto nunca é recalculado por uma edição.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID do lançamento"
// @Param        body  body  dto.AtualizarMovimentacaoRequest  true  "metadados"
// @Success      200   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id} [put]
func (h *MovimentacaoHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resp, err := h.atualizar.Atualizar(c.Context(), GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}
