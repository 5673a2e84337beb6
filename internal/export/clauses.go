package export

import "github.com/imobly/docforge/internal/contract"

// Boilerplate clauses for the downloadable rendition. These are fixed by
// contract type and intentionally not templated: the export path documents
// the standing terms, the preview path carries the negotiated text.

var rentalClauses = []string{
	"O presente contrato tem por objeto a locação do imóvel acima identificado, que o locatário declara receber em perfeito estado de conservação, obrigando-se a restituí-lo nas mesmas condições ao término da locação.",
	"O aluguel deverá ser pago até o dia de vencimento ajustado, mediante boleto bancário emitido pela administradora, incidindo sobre o valor em atraso multa de 10% e juros de mora de 1% ao mês.",
	"Correrão por conta do locatário as despesas ordinárias de condomínio, consumo de água, energia elétrica e gás, bem como os tributos incidentes sobre o imóvel quando assim convencionado.",
	"É vedada a sublocação, cessão ou empréstimo do imóvel, no todo ou em parte, sem o consentimento prévio e por escrito do locador.",
	"A infração de qualquer das cláusulas deste contrato sujeita a parte infratora à multa equivalente a três aluguéis vigentes, sem prejuízo da rescisão da locação.",
}

var saleClauses = []string{
	"O vendedor declara que o imóvel objeto deste contrato encontra-se livre e desembaraçado de quaisquer ônus reais, dívidas, hipotecas ou demandas judiciais.",
	"O preço ajustado será pago na forma convencionada entre as partes, servindo o presente instrumento como recibo das parcelas efetivamente quitadas.",
	"A posse do imóvel será transmitida ao comprador na data ajustada, correndo a partir de então por sua conta todos os tributos e despesas incidentes.",
	"A escritura definitiva será outorgada após a quitação integral do preço, correndo as despesas de lavratura e registro por conta do comprador.",
	"O presente compromisso é irrevogável e irretratável, obrigando as partes, seus herdeiros e sucessores, respondendo a parte desistente pela multa de 10% sobre o valor da venda.",
}

// Clauses returns the fixed clause list for a contract type.
func Clauses(t contract.Type) []string {
	if t == contract.TypeSale {
		return saleClauses
	}
	return rentalClauses
}
