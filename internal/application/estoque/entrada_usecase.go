package estoque

import (
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// EntradaUseCase lançamento, edição e exclusão de entradas.
type EntradaUseCase struct {
	tx TxRunner
}

// NewEntradaUseCase constrói o caso de uso.
func NewEntradaUseCase(tx TxRunner) *EntradaUseCase {
	return &EntradaUseCase{tx: tx}
}

// List devolve o histórico de entradas em ordem cronológica (mais antigo
// primeiro; a casca inverte para exibição).
func (uc *EntradaUseCase) List() (*dto.EntradaListResponse, error) {
	var out *dto.EntradaListResponse
	err := uc.tx.View(func(_ *estoque.Catalog, led *estoque.Ledger) error {
		entradas := led.Entradas()
		items := make([]dto.EntradaResponse, 0, len(entradas))
		for _, e := range entradas {
			items = append(items, toEntradaResponse(e))
		}
		out = &dto.EntradaListResponse{Items: items, Total: len(items)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Post lança uma entrada; cria o item se o nome for desconhecido.
func (uc *EntradaUseCase) Post(in dto.CreateEntradaRequest) (*dto.EntradaResponse, error) {
	if strings.TrimSpace(in.ItemName) == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	var out *dto.EntradaResponse
	err = uc.tx.Run(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		e, err := led.PostEntrada(cat, in.ItemName, in.Quantity, in.Location, in.Category, date)
		if err != nil {
			return err
		}
		resp := toEntradaResponse(e)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Edit altera quantidade e data de uma entrada.
func (uc *EntradaUseCase) Edit(id string, in dto.UpdateEntradaRequest) (*dto.EntradaResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	var out *dto.EntradaResponse
	err = uc.tx.Run(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		e, err := led.EditEntrada(cat, id, in.Quantity, date)
		if err != nil {
			return err
		}
		resp := toEntradaResponse(e)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete exclui uma entrada, revertendo sua contribuição no estoque.
func (uc *EntradaUseCase) Delete(id string) error {
	return uc.tx.Run(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		return led.DeleteEntrada(cat, id)
	})
}

func toEntradaResponse(e *entity.Entrada) dto.EntradaResponse {
	return dto.EntradaResponse{
		ID:       e.ID,
		ItemName: e.ItemName,
		Quantity: e.Quantity,
		Date:     e.Date,
	}
}
