// Package estoque orquestra os agregados do domínio por trás das operações
// expostas à casca de apresentação. Cada operação roda por inteiro dentro do
// TxRunner, validando antes de mutar, de modo que o estado observável nunca
// fica parcialmente aplicado.
package estoque

import (
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// StockUseCase consultas e edição direta do catálogo de itens.
type StockUseCase struct {
	tx TxRunner
}

// NewStockUseCase constrói o caso de uso.
func NewStockUseCase(tx TxRunner) *StockUseCase {
	return &StockUseCase{tx: tx}
}

// List devolve a visão filtrada do catálogo.
func (uc *StockUseCase) List(in dto.StockFilterRequest) (*dto.StockListResponse, error) {
	var out *dto.StockListResponse
	err := uc.tx.View(func(cat *estoque.Catalog, _ *estoque.Ledger) error {
		filtered := estoque.FilterItems(cat.Items(), toFilter(in))
		items := make([]dto.StockItemResponse, 0, len(filtered))
		for _, it := range filtered {
			items = append(items, toStockItemResponse(it))
		}
		out = &dto.StockListResponse{Items: items, Total: len(items)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Edit renomeia/edita um item e propaga a renomeação para o Ledger na mesma
// transação, para que nenhum registro fique referenciando o nome antigo.
func (uc *StockUseCase) Edit(oldName string, in dto.EditStockItemRequest) (*dto.StockItemResponse, error) {
	if in.LastUpdated != "" {
		if _, err := parseDate(in.LastUpdated); err != nil {
			return nil, err
		}
	}
	var out *dto.StockItemResponse
	err := uc.tx.Run(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		it := cat.FindItem(oldName)
		if it == nil {
			return domain.ErrNotFound
		}
		prev := it.Name
		updated, err := cat.EditItem(oldName, in.Name, in.Category, in.Location, in.LastUpdated)
		if err != nil {
			return err
		}
		if updated.Name != prev {
			led.RenameItem(prev, updated.Name)
		}
		resp := toStockItemResponse(updated)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete remove um item do catálogo. Falha com ErrConflict enquanto o
// histórico referenciar o item, o mesmo guarda referencial dos locais.
func (uc *StockUseCase) Delete(name string) error {
	return uc.tx.Run(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		if cat.FindItem(name) == nil {
			return domain.ErrNotFound
		}
		if led.HasRecordsFor(name) {
			return domain.ErrConflict
		}
		return cat.DeleteItem(name)
	})
}

func toStockItemResponse(it *entity.StockItem) dto.StockItemResponse {
	return dto.StockItemResponse{
		Name:        it.Name,
		Quantity:    it.Quantity,
		Location:    it.Location,
		Category:    it.Category,
		LastUpdated: it.LastUpdated,
	}
}
