package entity

// Entrada é um registro de entrada: a quantidade foi somada ao estoque do
// item no momento do lançamento. Editar ou excluir o registro ajusta o item
// simetricamente, para que o histórico e o nível atual nunca divirjam.
type Entrada struct {
	ID       string
	ItemName string
	Quantity int
	Date     string // YYYY-MM-DD
}
