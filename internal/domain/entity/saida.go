package entity

// Saida é um registro de saída: a quantidade foi subtraída do estoque do item
// no momento do lançamento. Mesmo ciclo de vida da Entrada, com o sinal do
// efeito invertido.
type Saida struct {
	ID          string
	ItemName    string
	Quantity    int
	Date        string // YYYY-MM-DD
	Observation string // texto livre, opcional
}
