package entity

import "time"

// Fornecedor é dado de referência imutável criado sob demanda nos diálogos de cadastro.
type Fornecedor struct {
	ID           string
	EmpresaID    string
	Nome         string
	NomeVendedor *string
	Telefone     string
	CriadoEm     time.Time
}
