// Package template holds the fixed catalog of legal clause templates.
// Entries are pure data: registering a new template means adding a catalog
// entry, never touching the merge or pagination code.
package template

import "regexp"

// Template is a reusable clause body with {{TOKEN}} placeholders.
type Template struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

// TokenPattern matches the placeholder syntax used in template bodies.
var TokenPattern = regexp.MustCompile(`\{\{[A-Z][A-Z0-9_]*\}\}`)

// DefaultID is the template used when a contract carries no (or an unknown)
// template id.
const DefaultID = "rental-standard"

// Lookup returns the template for id, falling back to the default template
// for empty or unrecognized ids. The boolean reports whether the requested
// id itself was found.
func Lookup(id string) (Template, bool) {
	if t, ok := byID[id]; ok {
		return t, true
	}
	return byID[DefaultID], false
}

// All returns the catalog in registration order.
func All() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Tokens lists the distinct placeholder tokens present in body, in first
// appearance order.
func Tokens(body string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range TokenPattern.FindAllString(body, -1) {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}

var catalog = []Template{
	{
		ID:          "rental-standard",
		Title:       "Contrato de Locação Residencial",
		Description: "Locação residencial padrão com garantia por caução e prazo determinado.",
		Body: `CONTRATO DE LOCAÇÃO RESIDENCIAL

LOCADORA ADMINISTRADORA: {{AGENCY_NAME}}, inscrita no CNPJ sob o nº {{AGENCY_DOCUMENT}}, CRECI {{AGENCY_LICENSE}}, com sede em {{AGENCY_ADDRESS}}, neste ato representando o proprietário.

LOCADOR: {{OWNER_NAME}}, inscrito no CPF/CNPJ sob o nº {{OWNER_DOCUMENT}}.

LOCATÁRIO: {{CLIENT_NAME}}, inscrito no CPF/CNPJ sob o nº {{CLIENT_DOCUMENT}}.

As partes acima identificadas têm, entre si, justo e acertado o presente Contrato de Locação Residencial do imóvel situado em {{PROPERTY_ADDRESS}}, que se regerá pelas cláusulas seguintes e pelas condições descritas no presente.

CLÁUSULA 1ª - DO OBJETO

O presente contrato tem como objeto a locação do imóvel residencial situado em {{PROPERTY_ADDRESS}}, na cidade de {{CITY}}, que o LOCATÁRIO declara ter vistoriado e recebido em perfeito estado de conservação.

CLÁUSULA 2ª - DO PRAZO

A locação terá início em {{START_DATE}} e término em {{END_DATE}}, totalizando {{DURATION_DAYS}} dias, data em que o LOCATÁRIO se obriga a restituir o imóvel desocupado e nas mesmas condições em que o recebeu, salvo prorrogação acordada por escrito entre as partes.

CLÁUSULA 3ª - DO ALUGUEL

O aluguel mensal é de R$ {{VALUE}} ({{VALUE_WORDS}}), a ser pago até o dia {{DUE_DAY}} de cada mês, mediante boleto emitido pela ADMINISTRADORA. O atraso no pagamento sujeitará o LOCATÁRIO à multa de 10% (dez por cento) sobre o valor devido, acrescida de juros de mora de 1% (um por cento) ao mês.

CLÁUSULA 4ª - DA ADMINISTRAÇÃO

A ADMINISTRADORA perceberá, a título de taxa de administração, o percentual de {{COMMISSION_RATE}}% sobre cada aluguel mensal efetivamente recebido, autorizada desde já a reter tal valor por ocasião do repasse ao LOCADOR.

CLÁUSULA 5ª - DOS ENCARGOS

Correrão por conta do LOCATÁRIO as despesas de consumo de água, energia elétrica, gás e as taxas condominiais ordinárias, bem como o Imposto Predial e Territorial Urbano (IPTU) incidente sobre o imóvel, quando assim convencionado.

CLÁUSULA 6ª - DA CONSERVAÇÃO

O LOCATÁRIO obriga-se a manter o imóvel em perfeito estado de conservação e limpeza, comunicando imediatamente à ADMINISTRADORA qualquer dano ou defeito, e a não realizar obras ou benfeitorias sem autorização prévia e por escrito do LOCADOR.

CLÁUSULA 7ª - DA RESCISÃO

A infração de qualquer cláusula deste contrato sujeitará a parte infratora à multa equivalente a 3 (três) aluguéis vigentes, garantido à parte inocente o direito de considerar rescindida a locação de pleno direito.

E, por estarem justos e contratados, firmam o presente instrumento em duas vias de igual teor, na presença das testemunhas abaixo.

{{CITY}}, {{TODAY}}.`,
	},
	{
		ID:          "sale-standard",
		Title:       "Contrato de Compra e Venda de Imóvel",
		Description: "Promessa de compra e venda com intermediação da imobiliária.",
		Body: `CONTRATO PARTICULAR DE PROMESSA DE COMPRA E VENDA

INTERMEDIADORA: {{AGENCY_NAME}}, CNPJ {{AGENCY_DOCUMENT}}, CRECI {{AGENCY_LICENSE}}, com sede em {{AGENCY_ADDRESS}}.

PROMITENTE VENDEDOR: {{OWNER_NAME}}, inscrito no CPF/CNPJ sob o nº {{OWNER_DOCUMENT}}.

PROMITENTE COMPRADOR: {{CLIENT_NAME}}, inscrito no CPF/CNPJ sob o nº {{CLIENT_DOCUMENT}}.

CLÁUSULA 1ª - DO OBJETO

O PROMITENTE VENDEDOR compromete-se a vender ao PROMITENTE COMPRADOR o imóvel situado em {{PROPERTY_ADDRESS}}, na cidade de {{CITY}}, livre e desembaraçado de quaisquer ônus, dívidas ou gravames.

CLÁUSULA 2ª - DO PREÇO

O preço certo e ajustado da venda é de R$ {{VALUE}} ({{VALUE_WORDS}}), a ser pago na forma e nos prazos convencionados entre as partes, com vencimento das parcelas no dia {{DUE_DAY}} de cada mês quando parcelado.

CLÁUSULA 3ª - DA CORRETAGEM

Pela intermediação do negócio, a INTERMEDIADORA fará jus à comissão de corretagem de {{COMMISSION_RATE}}% sobre o valor da venda, devida pelo PROMITENTE VENDEDOR no ato da assinatura deste instrumento.

CLÁUSULA 4ª - DA POSSE

A posse do imóvel será transmitida ao PROMITENTE COMPRADOR em {{START_DATE}}, ficando a lavratura da escritura definitiva condicionada à quitação integral do preço.

CLÁUSULA 5ª - DA IRREVOGABILIDADE

O presente compromisso é celebrado em caráter irrevogável e irretratável, obrigando as partes, seus herdeiros e sucessores, respondendo a parte que der causa ao desfazimento do negócio pela multa de 10% (dez por cento) sobre o valor da venda.

E, por estarem justos e contratados, firmam o presente instrumento em duas vias de igual teor, na presença das testemunhas abaixo.

{{CITY}}, {{TODAY}}.`,
	},
	{
		ID:          "management-standard",
		Title:       "Contrato de Administração de Imóvel",
		Description: "Administração de locação entre proprietário e imobiliária.",
		Body: `CONTRATO DE ADMINISTRAÇÃO DE IMÓVEL

ADMINISTRADORA: {{AGENCY_NAME}}, CNPJ {{AGENCY_DOCUMENT}}, CRECI {{AGENCY_LICENSE}}, com sede em {{AGENCY_ADDRESS}}, telefone {{AGENCY_PHONE}}.

PROPRIETÁRIO: {{OWNER_NAME}}, inscrito no CPF/CNPJ sob o nº {{OWNER_DOCUMENT}}.

CLÁUSULA 1ª - DO OBJETO

O PROPRIETÁRIO confere à ADMINISTRADORA poderes para administrar a locação do imóvel situado em {{PROPERTY_ADDRESS}}, na cidade de {{CITY}}, incluindo a cobrança de aluguéis, a prestação de contas mensal e a representação perante o locatário.

CLÁUSULA 2ª - DA REMUNERAÇÃO

A ADMINISTRADORA perceberá taxa de administração de {{COMMISSION_RATE}}% sobre os aluguéis efetivamente recebidos, cujo valor de referência atual é de R$ {{VALUE}} ({{VALUE_WORDS}}) mensais, com repasse ao PROPRIETÁRIO até o dia {{DUE_DAY}} do mês subsequente.

CLÁUSULA 3ª - DO PRAZO

O presente contrato vigorará de {{START_DATE}} a {{END_DATE}} ({{DURATION_DAYS}} dias), renovando-se automaticamente por iguais períodos caso não haja manifestação em contrário de qualquer das partes com antecedência mínima de 30 (trinta) dias.

CLÁUSULA 4ª - DA PRESTAÇÃO DE CONTAS

A ADMINISTRADORA encaminhará mensalmente ao PROPRIETÁRIO, pelo e-mail cadastrado, o demonstrativo de valores recebidos, deduções efetuadas e repasses realizados.

E, por estarem justos e contratados, firmam o presente instrumento em duas vias de igual teor.

{{CITY}}, {{TODAY}}.`,
	},
}

var byID = func() map[string]Template {
	m := make(map[string]Template, len(catalog))
	for _, t := range catalog {
		m[t.ID] = t
	}
	return m
}()
