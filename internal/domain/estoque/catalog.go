// Package estoque contém os agregados centrais do controle de estoque:
// Catalog (itens e locais), Ledger (histórico de entradas e saídas) e as
// funções puras de consulta/agregação sobre eles.
//
// Todo o estado vive em memória e é mutado exclusivamente pelas operações
// destes agregados; a camada de apresentação nunca toca as coleções
// diretamente.
package estoque

import (
	"sort"
	"strings"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Catalog é o dono do conjunto de itens de estoque e da lista de locais.
// Mantém um índice de chave normalizada (fold de maiúsculas) ao lado da
// coleção canônica ordenada por nome; o índice é reconstruído em renomeações.
type Catalog struct {
	items []*entity.StockItem
	index map[string]*entity.StockItem

	locations []string
}

// NewCatalog constrói um catálogo vazio.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]*entity.StockItem)}
}

// Items devolve os itens em ordem alfabética de nome.
func (c *Catalog) Items() []*entity.StockItem {
	out := make([]*entity.StockItem, len(c.items))
	copy(out, c.items)
	return out
}

// FindItem busca um item pelo nome, sem distinção de maiúsculas.
// Devolve nil se não existir.
func (c *Catalog) FindItem(name string) *entity.StockItem {
	return c.index[foldName(name)]
}

// AddItem insere um item pré-existente (carga inicial ou edição direta do
// catálogo). Falha com ErrConflict se já houver item com o mesmo nome e com
// ErrInvalidInput se nome vazio ou quantidade negativa.
func (c *Catalog) AddItem(it *entity.StockItem) error {
	if it == nil || strings.TrimSpace(it.Name) == "" || it.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	if c.FindItem(it.Name) != nil {
		return domain.ErrConflict
	}
	if it.Location != "" {
		loc, ok := c.canonicalLocation(it.Location)
		if !ok {
			return domain.ErrNotFound
		}
		it.Location = loc
	}
	c.items = append(c.items, it)
	c.index[foldName(it.Name)] = it
	c.sortItems()
	return nil
}

// UpsertOnEntrada aplica o efeito de catálogo de uma entrada: se o item já
// existe (sem distinção de maiúsculas), soma a quantidade e sobrescreve o
// local; caso contrário cria o item com LastUpdated = date e mantém o
// catálogo ordenado por nome.
func (c *Catalog) UpsertOnEntrada(name string, quantity int, location, category, date string) (*entity.StockItem, error) {
	name = strings.TrimSpace(name)
	if name == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	loc, ok := c.canonicalLocation(location)
	if !ok {
		return nil, domain.ErrNotFound
	}
	location = loc
	if it := c.FindItem(name); it != nil {
		it.Quantity += quantity
		it.Location = location
		return it, nil
	}
	it := &entity.StockItem{
		Name:        name,
		Quantity:    quantity,
		Location:    location,
		Category:    category,
		LastUpdated: date,
	}
	c.items = append(c.items, it)
	c.index[foldName(name)] = it
	c.sortItems()
	return it, nil
}

// ApplyDelta ajusta a quantidade de um item existente. Falha com ErrNotFound
// se o item não existir e com ErrInvariant se o resultado ficasse negativo;
// quem chama deve pré-validar antes de efetivar uma saída.
func (c *Catalog) ApplyDelta(name string, delta int) error {
	it := c.FindItem(name)
	if it == nil {
		return domain.ErrNotFound
	}
	if it.Quantity+delta < 0 {
		return domain.ErrInvariant
	}
	it.Quantity += delta
	return nil
}

// EditItem renomeia/edita um item. Falha com ErrConflict se o novo nome
// colidir (sem distinção de maiúsculas) com outro item. A propagação da
// renomeação para o Ledger é responsabilidade de quem orquestra (ver
// application/estoque), para que a atualização multi-coleção seja atômica.
func (c *Catalog) EditItem(oldName, newName, category, location, lastUpdated string) (*entity.StockItem, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" || strings.TrimSpace(category) == "" || location == "" || lastUpdated == "" {
		return nil, domain.ErrInvalidInput
	}
	it := c.FindItem(oldName)
	if it == nil {
		return nil, domain.ErrNotFound
	}
	if other := c.FindItem(newName); other != nil && other != it {
		return nil, domain.ErrConflict
	}
	loc, ok := c.canonicalLocation(location)
	if !ok {
		return nil, domain.ErrNotFound
	}
	location = loc
	delete(c.index, foldName(it.Name))
	it.Name = newName
	it.Category = category
	it.Location = location
	it.LastUpdated = lastUpdated
	c.index[foldName(newName)] = it
	c.sortItems()
	return it, nil
}

// DeleteItem remove um item do catálogo. O guarda referencial (nenhum
// registro do Ledger pode apontar para o item) fica na camada de aplicação.
func (c *Catalog) DeleteItem(name string) error {
	it := c.FindItem(name)
	if it == nil {
		return domain.ErrNotFound
	}
	delete(c.index, foldName(it.Name))
	for i, cur := range c.items {
		if cur == it {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	return nil
}

// ── Locais ────────────────────────────────────────────────────────────────────

// Locations devolve os locais em ordem alfabética.
func (c *Catalog) Locations() []string {
	out := make([]string, len(c.locations))
	copy(out, c.locations)
	return out
}

// HasLocation informa se o local existe (sem distinção de maiúsculas).
func (c *Catalog) HasLocation(name string) bool {
	_, ok := c.canonicalLocation(name)
	return ok
}

// canonicalLocation resolve um nome de local para a grafia cadastrada, sem
// distinção de maiúsculas. Itens sempre guardam a grafia canônica, para que
// as cascatas de renomeação/exclusão os encontrem por igualdade simples.
func (c *Catalog) canonicalLocation(name string) (string, bool) {
	key := foldName(name)
	for _, l := range c.locations {
		if foldName(l) == key {
			return l, true
		}
	}
	return "", false
}

// AddLocation cadastra um local. Falha com ErrConflict em duplicata.
func (c *Catalog) AddLocation(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	if c.HasLocation(name) {
		return domain.ErrConflict
	}
	c.locations = append(c.locations, name)
	sort.Strings(c.locations)
	return nil
}

// RenameLocation renomeia um local e propaga para todos os itens que o
// referenciam. Falha com ErrConflict se o novo nome já estiver em uso por
// outro local.
func (c *Catalog) RenameLocation(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return domain.ErrInvalidInput
	}
	oldKey, newKey := foldName(oldName), foldName(newName)
	pos := -1
	for i, l := range c.locations {
		key := foldName(l)
		if key == oldKey {
			pos = i
		} else if key == newKey {
			return domain.ErrConflict
		}
	}
	if pos < 0 {
		return domain.ErrNotFound
	}
	c.locations[pos] = newName
	sort.Strings(c.locations)
	for _, it := range c.items {
		if foldName(it.Location) == oldKey {
			it.Location = newName
		}
	}
	return nil
}

// DeleteLocation remove um local. Falha com ErrConflict ("em uso") enquanto
// algum item o referenciar.
func (c *Catalog) DeleteLocation(name string) error {
	key := foldName(name)
	pos := -1
	for i, l := range c.locations {
		if foldName(l) == key {
			pos = i
			break
		}
	}
	if pos < 0 {
		return domain.ErrNotFound
	}
	for _, it := range c.items {
		if foldName(it.Location) == key {
			return domain.ErrConflict
		}
	}
	c.locations = append(c.locations[:pos], c.locations[pos+1:]...)
	return nil
}

func (c *Catalog) sortItems() {
	sort.Slice(c.items, func(i, j int) bool {
		a, b := foldName(c.items[i].Name), foldName(c.items[j].Name)
		if a == b {
			return c.items[i].Name < c.items[j].Name
		}
		return a < b
	})
}
