package entity

import "time"

// Empresa é o escopo de todos os dados da aplicação (filtro empresa_id).
type Empresa struct {
	ID       string
	Nome     string
	CriadoEm time.Time
}

// Usuario autentica por telefone + senha e pertence a uma empresa.
type Usuario struct {
	ID        string
	EmpresaID string
	Nome      string
	Telefone  string
	SenhaHash string
	CriadoEm  time.Time
}
