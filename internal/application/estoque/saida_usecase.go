package estoque

import (
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// SaidaUseCase lançamento, edição e exclusão de saídas.
type SaidaUseCase struct {
	tx TxRunner
}

// NewSaidaUseCase constrói o caso de uso.
func NewSaidaUseCase(tx TxRunner) *SaidaUseCase {
	return &SaidaUseCase{tx: tx}
}

// List devolve o histórico de saídas em ordem cronológica.
func (uc *SaidaUseCase) List() (*dto.SaidaListResponse, error) {
	var out *dto.SaidaListResponse
	err := uc.tx.View(func(_ *estoque.Catalog, led *estoque.Ledger) error {
		saidas := led.Saidas()
		items := make([]dto.SaidaResponse, 0, len(saidas))
		for _, s := range saidas {
			items = append(items, toSaidaResponse(s))
		}
		out = &dto.SaidaListResponse{Items: items, Total: len(items)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Post lança uma saída contra um item existente com estoque suficiente.
func (uc *SaidaUseCase) Post(in dto.CreateSaidaRequest) (*dto.SaidaResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	var out *dto.SaidaResponse
	err = uc.tx.Run(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		s, err := led.PostSaida(cat, in.ItemName, in.Quantity, date, in.Observation)
		if err != nil {
			return err
		}
		resp := toSaidaResponse(s)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Edit altera quantidade, observação e data de uma saída.
func (uc *SaidaUseCase) Edit(id string, in dto.UpdateSaidaRequest) (*dto.SaidaResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	var out *dto.SaidaResponse
	err = uc.tx.Run(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		s, err := led.EditSaida(cat, id, in.Quantity, in.Observation, date)
		if err != nil {
			return err
		}
		resp := toSaidaResponse(s)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete exclui uma saída, devolvendo a quantidade ao estoque.
func (uc *SaidaUseCase) Delete(id string) error {
	return uc.tx.Run(func(cat *estoque.Catalog, led *estoque.Ledger) error {
		return led.DeleteSaida(cat, id)
	})
}

func toSaidaResponse(s *entity.Saida) dto.SaidaResponse {
	return dto.SaidaResponse{
		ID:          s.ID,
		ItemName:    s.ItemName,
		Quantity:    s.Quantity,
		Date:        s.Date,
		Observation: s.Observation,
	}
}
