package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/application/painel"
)

// PainelHandler trata as requisições do dashboard financeiro (protegido).
type PainelHandler struct {
	uc *painel.PainelUseCase
}

// NewPainelHandler constrói o handler.
func NewPainelHandler(uc *painel.PainelUseCase) *PainelHandler {
	return &PainelHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard financeiro do estoque
// @Description  Valor em estoque por categoria, CMV real, CMV por categoria e
// classificação, entradas, série de giro e volatilidade de preço.
// @Tags         painel
// @Security     Bearer
// @Produce      json
// @Param        janela   query  int     false  "Janela em dias: 7, 30, 90, 365; 0 = tudo"
// @Param        produto  query  string  false  "Produto do cartão de giro; vazio = maior movimentado"
// @Success      200  {object}  dto.PainelResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/painel [get]
func (h *PainelHandler) Get(c *fiber.Ctx) error {
	var in dto.PainelRequest
	if err := c.QueryParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resp, err := h.uc.Montar(c.Context(), GetEmpresaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}
