package entity

import "time"

// Categoria é dado de referência imutável: nome + token de cor para a UI.
type Categoria struct {
	ID        string
	EmpresaID string
	Nome      string
	Cor       string // token de cor (ex: "Colors.BLUE_100")
	CriadoEm  time.Time
}
