package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dipperr/foodflow/internal/application/auth"
	"github.com/dipperr/foodflow/internal/application/dto"
)

// AuthHandler trata as requisições de autenticação (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login por telefone e senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "telefone, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resp)
}
