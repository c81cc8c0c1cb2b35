package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrConflito             = errors.New("conflito com o estado atual")
	ErrOperacaoDesconhecida = errors.New("operação de movimentação desconhecida")
	ErrListaFinalizada      = errors.New("lista de compras já finalizada")
)
