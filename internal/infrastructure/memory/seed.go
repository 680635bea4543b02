package memory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// Seed carrega o conjunto de dados de demonstração do painel: itens, locais
// e um histórico curto de entradas e saídas. As quantidades dos itens já
// incluem o efeito dos registros semeados, preservando a invariante
// quantidade = inicial + Σ entradas − Σ saídas.
func Seed(s *Store) error {
	return s.Run(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		for _, loc := range []string{"Corredor A", "Corredor B", "Corredor C", "Ferramentas", "A1"} {
			if err := cat.AddLocation(loc); err != nil {
				return fmt.Errorf("seed local %q: %w", loc, err)
			}
		}
		items := []*entity.StockItem{
			{Name: "Produto X", Quantity: 120, Location: "A1", Category: "Eletrônicos", LastUpdated: "2023-11-15"},
			{Name: "Produto Y", Quantity: 120, Location: "A1", Category: "Eletrônicos", LastUpdated: "2023-11-20"},
			{Name: "Produto Z", Quantity: 120, Location: "A1", Category: "Ferragens", LastUpdated: "2023-11-20"},
			{Name: "Parafuso Allen M5x20", Quantity: 1500, Location: "Corredor A", Category: "Fixadores", LastUpdated: "2023-10-05"},
			{Name: "Arruela Lisa M5", Quantity: 3200, Location: "Corredor A", Category: "Fixadores", LastUpdated: "2023-10-05"},
			{Name: "Óleo Lubrificante WD-40", Quantity: 50, Location: "Corredor B", Category: "Químicos", LastUpdated: "2023-11-15"},
		}
		for _, it := range items {
			if err := cat.AddItem(it); err != nil {
				return fmt.Errorf("seed item %q: %w", it.Name, err)
			}
		}
		led.Restore(
			[]*entity.Entrada{
				{ID: uuid.New().String(), ItemName: "Produto X", Quantity: 50, Date: "2023-10-26"},
				{ID: uuid.New().String(), ItemName: "Parafuso Allen M5x20", Quantity: 500, Date: "2023-10-05"},
				{ID: uuid.New().String(), ItemName: "Produto Y", Quantity: 120, Date: "2023-11-20"},
			},
			[]*entity.Saida{
				{ID: uuid.New().String(), ItemName: "Óleo Lubrificante WD-40", Quantity: 10, Date: "2023-10-25", Observation: "Retirada para manutenção preventiva."},
			},
		)
		return nil
	})
}
