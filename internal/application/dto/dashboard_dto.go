package dto

// DashboardSummaryResponse o card "Visão Geral do Estoque": totais e
// contagens de entradas e saídas restritos à visão filtrada.
type DashboardSummaryResponse struct {
	TotalEntradas     int `json:"total_entradas"`
	RegistrosEntradas int `json:"registros_entradas"`
	TotalSaidas       int `json:"total_saidas"`
	RegistrosSaidas   int `json:"registros_saidas"`
}

// FilterOptionsResponse opções para as barras de filtro do painel. Months
// vem em ordem decrescente com o sentinela "all" na primeira posição.
type FilterOptionsResponse struct {
	Locations  []string `json:"locations"`
	Categories []string `json:"categories"`
	Months     []string `json:"months"`
}
