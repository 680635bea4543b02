package estoque

import (
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// DashboardUseCase o resumo do período e as opções de filtro do painel.
type DashboardUseCase struct {
	tx TxRunner
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(tx TxRunner) *DashboardUseCase {
	return &DashboardUseCase{tx: tx}
}

// Summary restringe o histórico aos itens visíveis sob o filtro e soma
// quantidades e contagens de cada lado do fluxo.
func (uc *DashboardUseCase) Summary(in dto.StockFilterRequest) (*dto.DashboardSummaryResponse, error) {
	var out *dto.DashboardSummaryResponse
	err := uc.tx.View(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		visible := estoque.FilterItems(cat.Items(), toFilter(in))
		sum := estoque.SummarizePeriod(led.Entradas(), led.Saidas(), visible)
		out = &dto.DashboardSummaryResponse{
			TotalEntradas:     sum.TotalEntradas,
			RegistrosEntradas: sum.RegistrosEntradas,
			TotalSaidas:       sum.TotalSaidas,
			RegistrosSaidas:   sum.RegistrosSaidas,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FilterOptions deriva as opções das barras de filtro a partir do catálogo.
func (uc *DashboardUseCase) FilterOptions() (*dto.FilterOptionsResponse, error) {
	var out *dto.FilterOptionsResponse
	err := uc.tx.View(func(cat *estoque.Catalog, _ *estoque.Ledger) error {
		items := cat.Items()
		out = &dto.FilterOptionsResponse{
			Locations:  estoque.DistinctValues(items, func(it *entity.StockItem) string { return it.Location }),
			Categories: estoque.DistinctValues(items, func(it *entity.StockItem) string { return it.Category }),
			Months:     estoque.DistinctMonths(items),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
