package estoque

import (
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// LocationUseCase CRUD da lista de locais de armazenamento.
type LocationUseCase struct {
	tx TxRunner
}

// NewLocationUseCase constrói o caso de uso.
func NewLocationUseCase(tx TxRunner) *LocationUseCase {
	return &LocationUseCase{tx: tx}
}

// List devolve os locais em ordem alfabética.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	var out *dto.LocationListResponse
	err := uc.tx.View(func(cat *estoque.Catalog, _ *estoque.Ledger) error {
		out = &dto.LocationListResponse{Locations: cat.Locations()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Add cadastra um local novo.
func (uc *LocationUseCase) Add(in dto.CreateLocationRequest) (*dto.LocationListResponse, error) {
	var out *dto.LocationListResponse
	err := uc.tx.Run(func(cat *estoque.Catalog, _ *estoque.Ledger) error {
		if err := cat.AddLocation(in.Name); err != nil {
			return err
		}
		out = &dto.LocationListResponse{Locations: cat.Locations()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Rename renomeia um local, propagando para os itens que o referenciam.
func (uc *LocationUseCase) Rename(oldName string, in dto.RenameLocationRequest) (*dto.LocationListResponse, error) {
	var out *dto.LocationListResponse
	err := uc.tx.Run(func(cat *estoque.Catalog, _ *estoque.Ledger) error {
		if err := cat.RenameLocation(oldName, in.NewName); err != nil {
			return err
		}
		out = &dto.LocationListResponse{Locations: cat.Locations()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete exclui um local sem itens.
func (uc *LocationUseCase) Delete(name string) error {
	return uc.tx.Run(func(cat *estoque.Catalog, _ *estoque.Ledger) error {
		return cat.DeleteLocation(name)
	})
}
