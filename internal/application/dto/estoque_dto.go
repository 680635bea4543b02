package dto

// StockItemResponse item de estoque em respostas.
type StockItemResponse struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	LastUpdated string `json:"last_updated"`
}

// StockListResponse visão (possivelmente filtrada) do catálogo.
type StockListResponse struct {
	Items []StockItemResponse `json:"items"`
	Total int                 `json:"total"`
}

// StockFilterRequest parâmetros de filtragem da visão de estoque.
// As três seleções de dimensão coexistem; apenas a indicada em Type é
// aplicada. Com Enabled em false só a busca livre vale.
type StockFilterRequest struct {
	Search   string `query:"busca"`
	Enabled  bool   `query:"filtros"`
	Type     string `query:"tipo"` // local | categoria | data
	Location string `query:"local"`
	Category string `query:"categoria"`
	Month    string `query:"mes"` // YYYY-MM
}

// EditStockItemRequest edição direta de um item do catálogo.
type EditStockItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	LastUpdated string `json:"last_updated"`
}

// CreateLocationRequest cadastro de local.
type CreateLocationRequest struct {
	Name string `json:"name"`
}

// RenameLocationRequest renomeação de local.
type RenameLocationRequest struct {
	NewName string `json:"new_name"`
}

// LocationListResponse lista ordenada de locais.
type LocationListResponse struct {
	Locations []string `json:"locations"`
}
