package estoque

import (
	"sort"
	"strings"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// FilterAll é o valor sentinela "sem seleção" de cada dimensão de filtro.
const FilterAll = "all"

// FilterType identifica a dimensão de filtro ativa.
type FilterType string

const (
	FilterByLocation FilterType = "local"
	FilterByCategory FilterType = "categoria"
	FilterByMonth    FilterType = "data"
)

// Filter combina o termo de busca livre com a dimensão de filtro ativa.
// As três seleções coexistem; apenas a ativa é aplicada (política
// preserve-all, ver DESIGN.md). Com Enabled em false só a busca livre vale.
type Filter struct {
	Search   string
	Enabled  bool
	Active   FilterType
	Location string // seleção exata ou FilterAll
	Category string // seleção exata ou FilterAll
	Month    string // prefixo YYYY-MM ou FilterAll
}

// FilterItems deriva a visão filtrada do catálogo. Função pura: não muta a
// entrada. A busca livre casa substring, sem distinção de maiúsculas, no
// nome OU no local do item.
func FilterItems(items []*entity.StockItem, f Filter) []*entity.StockItem {
	term := foldName(strings.TrimSpace(f.Search))
	out := make([]*entity.StockItem, 0, len(items))
	for _, it := range items {
		if term != "" &&
			!strings.Contains(foldName(it.Name), term) &&
			!strings.Contains(foldName(it.Location), term) {
			continue
		}
		if f.Enabled && !matchDimension(it, f) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchDimension(it *entity.StockItem, f Filter) bool {
	switch f.Active {
	case FilterByLocation:
		return f.Location == "" || f.Location == FilterAll || it.Location == f.Location
	case FilterByCategory:
		return f.Category == "" || f.Category == FilterAll || it.Category == f.Category
	case FilterByMonth:
		return f.Month == "" || f.Month == FilterAll || strings.HasPrefix(it.LastUpdated, f.Month)
	}
	return true
}

// Summary é o resumo do período exibido no painel: totais e contagens de
// entradas e saídas, independentes entre si.
type Summary struct {
	TotalEntradas     int
	RegistrosEntradas int
	TotalSaidas       int
	RegistrosSaidas   int
}

// SummarizePeriod restringe os registros aos itens visíveis (visão filtrada)
// e soma quantidades e contagens para cada lado do fluxo.
func SummarizePeriod(entradas []*entity.Entrada, saidas []*entity.Saida, visible []*entity.StockItem) Summary {
	names := make(map[string]struct{}, len(visible))
	for _, it := range visible {
		names[it.Name] = struct{}{}
	}
	var sum Summary
	for _, e := range entradas {
		if _, ok := names[e.ItemName]; ok {
			sum.TotalEntradas += e.Quantity
			sum.RegistrosEntradas++
		}
	}
	for _, s := range saidas {
		if _, ok := names[s.ItemName]; ok {
			sum.TotalSaidas += s.Quantity
			sum.RegistrosSaidas++
		}
	}
	return sum
}

// DistinctValues devolve os valores distintos de um campo dos itens, na
// ordem em que aparecem no catálogo (que é ordenado por nome). Usado para
// montar as opções de filtro de local e categoria.
func DistinctValues(items []*entity.StockItem, selector func(*entity.StockItem) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range items {
		v := selector(it)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DistinctMonths deriva as opções do filtro de data: os prefixos YYYY-MM de
// LastUpdated, em ordem decrescente, com o sentinela FilterAll fixado na
// primeira posição.
func DistinctMonths(items []*entity.StockItem) []string {
	months := DistinctValues(items, func(it *entity.StockItem) string {
		if len(it.LastUpdated) < 7 {
			return it.LastUpdated
		}
		return it.LastUpdated[:7]
	})
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return append([]string{FilterAll}, months...)
}
