package estoque

// Classificações oferecidas por operação, na ordem de exibição.
var (
	ClassificacoesEntrada = []string{"Compras", "Produção", "Transferência"}
	ClassificacoesSaida   = []string{"Vendas", "Consumo interno", "Transferência", "Desperdício"}
)

// EfeitosOperacao descreve o que o formulário de movimentação deve exibir
// para uma operação: as classificações permitidas e a visibilidade dos campos
// auxiliares. O campo de validade cria um lote ao registrar entrada (inerte
// por enquanto).
type EfeitosOperacao struct {
	Classificacoes  []string
	PrecoVisivel    bool
	ValidadeVisivel bool
}

// Efeitos é a máquina de estados da política de classificação. Selecionar uma
// operação sempre parte do estado limpo (sem classificações, campos ocultos)
// antes de aplicar os efeitos — nada acumula entre re-seleções.
func Efeitos(op Operacao) EfeitosOperacao {
	e := EfeitosOperacao{} // estado limpo
	switch op {
	case OperacaoEntrada:
		e.Classificacoes = append(e.Classificacoes, ClassificacoesEntrada...)
		e.PrecoVisivel = true
		e.ValidadeVisivel = true
	case OperacaoSaida:
		e.Classificacoes = append(e.Classificacoes, ClassificacoesSaida...)
	case OperacaoInventario:
		e.PrecoVisivel = true
	}
	return e
}

// ClassificacaoPermitida verifica se a classificação é válida para a operação.
// Classificação vazia é sempre aceita (movimentações "sem class." existem no
// histórico).
func ClassificacaoPermitida(op Operacao, classificacao string) bool {
	if classificacao == "" {
		return true
	}
	for _, c := range Efeitos(op).Classificacoes {
		if lowerPT.String(c) == lowerPT.String(classificacao) {
			return true
		}
	}
	return false
}
