package dto

// LoginRequest body para POST /api/auth/login. O telefone é o identificador
// de login.
type LoginRequest struct {
	Telefone string `json:"telefone"`
	Senha    string `json:"senha"`
}

// LoginResponse token de acesso e dados básicos do usuário.
type LoginResponse struct {
	Token     string `json:"token"`
	UsuarioID string `json:"usuario_id"`
	EmpresaID string `json:"empresa_id"`
	Nome      string `json:"nome"`
}

// CategoriaRequest body para POST /api/categorias. Cor é o token de cor
// usado pela UI nos gráficos.
type CategoriaRequest struct {
	Nome string `json:"nome"`
	Cor  string `json:"cor,omitempty"`
}

// CategoriaResponse categoria cadastrada.
type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Cor  string `json:"cor,omitempty"`
}

// FornecedorRequest body para POST/PUT de fornecedores.
type FornecedorRequest struct {
	Nome         string  `json:"nome"`
	NomeVendedor *string `json:"nome_vendedor,omitempty"`
	Telefone     string  `json:"telefone,omitempty"`
}

// FornecedorResponse fornecedor cadastrado.
type FornecedorResponse struct {
	ID           string  `json:"id"`
	Nome         string  `json:"nome"`
	NomeVendedor *string `json:"nome_vendedor,omitempty"`
	Telefone     string  `json:"telefone,omitempty"`
}
