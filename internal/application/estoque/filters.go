package estoque

import (
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// toFilter converte o request HTTP no filtro do domínio. Dimensão
// desconhecida ou vazia cai em "local", o padrão do painel.
func toFilter(in dto.StockFilterRequest) estoque.Filter {
	active := estoque.FilterType(in.Type)
	switch active {
	case estoque.FilterByLocation, estoque.FilterByCategory, estoque.FilterByMonth:
	default:
		active = estoque.FilterByLocation
	}
	return estoque.Filter{
		Search:   in.Search,
		Enabled:  in.Enabled,
		Active:   active,
		Location: in.Location,
		Category: in.Category,
		Month:    in.Month,
	}
}

// parseDate valida uma data civil YYYY-MM-DD.
func parseDate(s string) (string, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("data %q: %w", s, domain.ErrInvalidInput)
	}
	return s, nil
}
