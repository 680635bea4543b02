package estoque

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Ledger é o dono do histórico de entradas e saídas. As coleções são
// append-mostly e mantidas em ordem cronológica de lançamento (mais antigo
// primeiro); edições e exclusões ajustam o item do Catalog simetricamente,
// de modo que o nível autoritativo e o histórico nunca divirjam.
//
// Política de estoque negativo: simétrica. Assim como uma saída nunca pode
// deixar o estoque negativo, editar ou excluir uma entrada também não pode
// (ver DESIGN.md) — toda operação valida antes de mutar, portanto ou aplica
// por completo ou não aplica nada.
type Ledger struct {
	entradas []*entity.Entrada
	saidas   []*entity.Saida
}

// NewLedger constrói um ledger vazio.
func NewLedger() *Ledger { return &Ledger{} }

// Entradas devolve os registros de entrada em ordem cronológica.
func (l *Ledger) Entradas() []*entity.Entrada {
	out := make([]*entity.Entrada, len(l.entradas))
	copy(out, l.entradas)
	return out
}

// Saidas devolve os registros de saída em ordem cronológica.
func (l *Ledger) Saidas() []*entity.Saida {
	out := make([]*entity.Saida, len(l.saidas))
	copy(out, l.saidas)
	return out
}

// PostEntrada lança uma entrada: aplica UpsertOnEntrada no catálogo e anexa
// o registro com id novo. O registro guarda o nome canônico do item, para
// que o histórico continue resolvível mesmo quando o usuário digitou o nome
// com caixa diferente.
func (l *Ledger) PostEntrada(cat *Catalog, itemName string, quantity int, location, category, date string) (*entity.Entrada, error) {
	it, err := cat.UpsertOnEntrada(itemName, quantity, location, category, date)
	if err != nil {
		return nil, err
	}
	e := &entity.Entrada{
		ID:       uuid.New().String(),
		ItemName: it.Name,
		Quantity: quantity,
		Date:     date,
	}
	l.entradas = append(l.entradas, e)
	return e, nil
}

// EditEntrada altera quantidade e data de uma entrada, ajustando o item pela
// diferença. Uma redução que deixasse o estoque negativo falha com
// ErrInsufficientStock.
func (l *Ledger) EditEntrada(cat *Catalog, id string, newQuantity int, newDate string) (*entity.Entrada, error) {
	if newQuantity <= 0 || newDate == "" {
		return nil, domain.ErrInvalidInput
	}
	e := l.findEntrada(id)
	if e == nil {
		return nil, domain.ErrNotFound
	}
	it := cat.FindItem(e.ItemName)
	if it == nil {
		return nil, domain.ErrInvariant
	}
	diff := newQuantity - e.Quantity
	if it.Quantity+diff < 0 {
		return nil, domain.ErrInsufficientStock
	}
	if err := cat.ApplyDelta(e.ItemName, diff); err != nil {
		return nil, err
	}
	e.Quantity = newQuantity
	e.Date = newDate
	return e, nil
}

// DeleteEntrada reverte a contribuição da entrada no estoque do item e
// remove o registro. Falha com ErrInsufficientStock se a reversão deixasse o
// estoque negativo.
func (l *Ledger) DeleteEntrada(cat *Catalog, id string) error {
	e := l.findEntrada(id)
	if e == nil {
		return domain.ErrNotFound
	}
	it := cat.FindItem(e.ItemName)
	if it == nil {
		return domain.ErrInvariant
	}
	if it.Quantity-e.Quantity < 0 {
		return domain.ErrInsufficientStock
	}
	if err := cat.ApplyDelta(e.ItemName, -e.Quantity); err != nil {
		return err
	}
	for i, cur := range l.entradas {
		if cur == e {
			l.entradas = append(l.entradas[:i], l.entradas[i+1:]...)
			break
		}
	}
	return nil
}

// PostSaida lança uma saída: exige item existente com estoque suficiente,
// decrementa a quantidade e anexa o registro.
func (l *Ledger) PostSaida(cat *Catalog, itemName string, quantity int, date, observation string) (*entity.Saida, error) {
	if strings.TrimSpace(itemName) == "" || quantity <= 0 || date == "" {
		return nil, domain.ErrInvalidInput
	}
	it := cat.FindItem(itemName)
	if it == nil {
		return nil, domain.ErrNotFound
	}
	if it.Quantity < quantity {
		return nil, domain.ErrInsufficientStock
	}
	if err := cat.ApplyDelta(it.Name, -quantity); err != nil {
		return nil, err
	}
	s := &entity.Saida{
		ID:          uuid.New().String(),
		ItemName:    it.Name,
		Quantity:    quantity,
		Date:        date,
		Observation: observation,
	}
	l.saidas = append(l.saidas, s)
	return s, nil
}

// EditSaida altera quantidade, observação e data de uma saída. Um aumento de
// quantidade que exceda o estoque disponível falha com ErrInsufficientStock;
// uma redução sempre sucede.
func (l *Ledger) EditSaida(cat *Catalog, id string, newQuantity int, newObservation, newDate string) (*entity.Saida, error) {
	if newQuantity <= 0 || newDate == "" {
		return nil, domain.ErrInvalidInput
	}
	s := l.findSaida(id)
	if s == nil {
		return nil, domain.ErrNotFound
	}
	it := cat.FindItem(s.ItemName)
	if it == nil {
		return nil, domain.ErrInvariant
	}
	diff := newQuantity - s.Quantity
	if it.Quantity < diff {
		return nil, domain.ErrInsufficientStock
	}
	if err := cat.ApplyDelta(s.ItemName, -diff); err != nil {
		return nil, err
	}
	s.Quantity = newQuantity
	s.Observation = newObservation
	s.Date = newDate
	return s, nil
}

// DeleteSaida devolve a quantidade ao estoque do item e remove o registro.
// Devolver estoque nunca o deixa negativo, então não há verificação aqui.
func (l *Ledger) DeleteSaida(cat *Catalog, id string) error {
	s := l.findSaida(id)
	if s == nil {
		return domain.ErrNotFound
	}
	if err := cat.ApplyDelta(s.ItemName, s.Quantity); err != nil {
		return err
	}
	for i, cur := range l.saidas {
		if cur == s {
			l.saidas = append(l.saidas[:i], l.saidas[i+1:]...)
			break
		}
	}
	return nil
}

// RenameItem propaga a renomeação de um item para todos os registros que
// referenciam o nome antigo, varrendo as duas coleções de uma vez para que
// nenhum registro fique apontando para um nome obsoleto.
func (l *Ledger) RenameItem(oldName, newName string) {
	key := foldName(oldName)
	for _, e := range l.entradas {
		if foldName(e.ItemName) == key {
			e.ItemName = newName
		}
	}
	for _, s := range l.saidas {
		if foldName(s.ItemName) == key {
			s.ItemName = newName
		}
	}
}

// HasRecordsFor informa se algum registro (entrada ou saída) referencia o
// item — guarda referencial para a exclusão de itens.
func (l *Ledger) HasRecordsFor(itemName string) bool {
	key := foldName(itemName)
	for _, e := range l.entradas {
		if foldName(e.ItemName) == key {
			return true
		}
	}
	for _, s := range l.saidas {
		if foldName(s.ItemName) == key {
			return true
		}
	}
	return false
}

// Restore reinsere registros existentes (carga inicial), preservando a ordem
// recebida e sem tocar no catálogo.
func (l *Ledger) Restore(entradas []*entity.Entrada, saidas []*entity.Saida) {
	l.entradas = append(l.entradas, entradas...)
	l.saidas = append(l.saidas, saidas...)
}

func (l *Ledger) findEntrada(id string) *entity.Entrada {
	for _, e := range l.entradas {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (l *Ledger) findSaida(id string) *entity.Saida {
	for _, s := range l.saidas {
		if s.ID == id {
			return s
		}
	}
	return nil
}
