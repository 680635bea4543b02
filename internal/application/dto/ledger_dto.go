package dto

// EntradaResponse registro de entrada em respostas.
type EntradaResponse struct {
	ID       string `json:"id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

// EntradaListResponse histórico de entradas, mais antigo primeiro.
type EntradaListResponse struct {
	Items []EntradaResponse `json:"items"`
	Total int               `json:"total"`
}

// CreateEntradaRequest lançamento de entrada. Se o item não existir, é
// criado com o local e a categoria informados.
type CreateEntradaRequest struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
	Category string `json:"category"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// UpdateEntradaRequest edição de entrada (somente quantidade e data).
type UpdateEntradaRequest struct {
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

// SaidaResponse registro de saída em respostas.
type SaidaResponse struct {
	ID          string `json:"id"`
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
	Observation string `json:"observation,omitempty"`
}

// SaidaListResponse histórico de saídas, mais antigo primeiro.
type SaidaListResponse struct {
	Items []SaidaResponse `json:"items"`
	Total int             `json:"total"`
}

// CreateSaidaRequest lançamento de saída.
type CreateSaidaRequest struct {
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
	Observation string `json:"observation"`
}

// UpdateSaidaRequest edição de saída (quantidade, observação e data).
type UpdateSaidaRequest struct {
	Quantity    int    `json:"quantity"`
	Observation string `json:"observation"`
	Date        string `json:"date"`
}
