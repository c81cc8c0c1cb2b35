// Package moeda isola o parsing de números e datas no formato pt-BR.
// O motor de estoque opera só com decimal.Decimal e time.Time; nenhuma regra
// de formatação vaza para a lógica de negócio.
package moeda

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dipperr/foodflow/internal/domain"
)

// PrefixoMoeda é o prefixo literal aceito em valores monetários de formulário.
const PrefixoMoeda = "R$ "

// LayoutDataBR formato de data dos formulários.
const LayoutDataBR = "02/01/2006"

// ParseDecimalBR converte um decimal no formato pt-BR para decimal.Decimal:
// vírgula como separador decimal, ponto opcional como separador de milhar e
// prefixo "R$ " opcional. "1.234,50" -> 1234.50; "R$ 10,00" -> 10.00.
// Texto não numérico é rejeitado com ErrEntradaInvalida, nunca coagido a zero.
func ParseDecimalBR(s string) (decimal.Decimal, error) {
	limpo := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), PrefixoMoeda))
	if limpo == "" {
		return decimal.Zero, fmt.Errorf("%w: valor vazio", domain.ErrEntradaInvalida)
	}
	// Milhar "1.234,50": só remove os pontos quando há vírgula decimal,
	// para não engolir um "10.5" digitado com ponto por engano.
	if strings.Contains(limpo, ",") {
		limpo = strings.ReplaceAll(limpo, ".", "")
	}
	limpo = strings.ReplaceAll(limpo, ",", ".")
	d, err := decimal.NewFromString(limpo)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q não é um número", domain.ErrEntradaInvalida, s)
	}
	return d, nil
}

// ParseDecimalBROpcional trata string vazia como ausência (nil), preservando a
// distinção entre "sem preço" e "preço zero".
func ParseDecimalBROpcional(s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), PrefixoMoeda)) == "" {
		return nil, nil
	}
	d, err := ParseDecimalBR(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseDataBR interpreta "dd/mm/aaaa", acrescenta a hora atual do relógio e
// localiza no fuso de offset fixo informado (ex: "-04:00"). Data malformada é
// rejeitada com ErrEntradaInvalida — o sistema legado degradava em silêncio
// passando a string crua adiante.
func ParseDataBR(s string, agora time.Time, tzOffset string) (time.Time, error) {
	loc, err := locDoOffset(tzOffset)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse(LayoutDataBR, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: data %q fora do formato dd/mm/aaaa", domain.ErrEntradaInvalida, s)
	}
	return time.Date(d.Year(), d.Month(), d.Day(),
		agora.Hour(), agora.Minute(), agora.Second(), 0, loc), nil
}

// ParseSomenteDataBR interpreta "dd/mm/aaaa" como meia-noite no fuso de
// offset fixo informado. Usada para datas sem componente de hora, como a
// validade de um lote ou o recebimento de uma lista de compras.
func ParseSomenteDataBR(s string, tzOffset string) (time.Time, error) {
	loc, err := locDoOffset(tzOffset)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.ParseInLocation(LayoutDataBR, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: data %q fora do formato dd/mm/aaaa", domain.ErrEntradaInvalida, s)
	}
	return d, nil
}

// Fuso expõe o *time.Location de offset fixo usado pelos parses de data.
func Fuso(tzOffset string) (*time.Location, error) {
	return locDoOffset(tzOffset)
}

// locDoOffset converte "-04:00" em um *time.Location de offset fixo.
func locDoOffset(offset string) (*time.Location, error) {
	var h, m int
	var sinal rune
	if _, err := fmt.Sscanf(offset, "%c%02d:%02d", &sinal, &h, &m); err != nil {
		return nil, fmt.Errorf("%w: offset de fuso %q inválido", domain.ErrEntradaInvalida, offset)
	}
	seg := h*3600 + m*60
	if sinal == '-' {
		seg = -seg
	} else if sinal != '+' {
		return nil, fmt.Errorf("%w: offset de fuso %q inválido", domain.ErrEntradaInvalida, offset)
	}
	return time.FixedZone("UTC"+offset, seg), nil
}
