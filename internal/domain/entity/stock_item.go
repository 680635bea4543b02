package entity

// StockItem representa um item de estoque. O nome é a identidade do item
// (único, sem distinção de maiúsculas); Quantity é o nível de estoque
// autoritativo, mantido consistente com o histórico de entradas e saídas.
type StockItem struct {
	Name        string
	Quantity    int
	Location    string
	Category    string
	LastUpdated string // data civil YYYY-MM-DD
}
