package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/pkg/jwt"
)

// Chaves de Locals para usuário e empresa no Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalEmpresaID = "empresa_id"
)

// AuthMiddleware valida o Bearer Token JWT e coloca UsuarioID e EmpresaID em
// c.Locals. Todo o escopo de dados vem do empresa_id do token, nunca de campo
// do request.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		usuarioID, empresaID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalEmpresaID, empresaID)
		return c.Next()
	}
}

// GetUsuarioID devolve o UsuarioID do contexto (após o middleware de auth).
func GetUsuarioID(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmpresaID devolve o EmpresaID do contexto (após o middleware de auth).
func GetEmpresaID(c *fiber.Ctx) string {
	v := c.Locals(LocalEmpresaID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
