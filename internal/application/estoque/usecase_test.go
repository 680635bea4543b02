package estoque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	appestoque "github.com/jhoicas/estoque-api/internal/application/estoque"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// seededStore devolve um store com a carga de demonstração.
func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	require.NoError(t, memory.Seed(s), "a carga de demonstração deve entrar sem erro")
	return s
}

func findItem(t *testing.T, uc *appestoque.StockUseCase, name string) dto.StockItemResponse {
	t.Helper()
	out, err := uc.List(dto.StockFilterRequest{Search: name, Type: "local", Location: "all", Category: "all", Month: "all"})
	require.NoError(t, err)
	for _, it := range out.Items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("item %q não encontrado na listagem", name)
	return dto.StockItemResponse{}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestEntradaPost_ItemExistenteSomaQuantidade(t *testing.T) {
	s := seededStore(t)
	stockUC := appestoque.NewStockUseCase(s)
	entradaUC := appestoque.NewEntradaUseCase(s)

	rec, err := entradaUC.Post(dto.CreateEntradaRequest{
		ItemName: "parafuso allen m5x20", // casing diferente do catálogo
		Quantity: 500,
		Location: "Corredor A",
		Date:     "2023-11-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Parafuso Allen M5x20", rec.ItemName, "o registro deve guardar o nome canônico do catálogo")
	assert.NotEmpty(t, rec.ID)

	it := findItem(t, stockUC, "Parafuso Allen M5x20")
	assert.Equal(t, 2000, it.Quantity, "a entrada deve somar ao saldo existente")
}

func TestEntradaPost_ItemNovoEntraNoCatalogo(t *testing.T) {
	s := seededStore(t)
	stockUC := appestoque.NewStockUseCase(s)
	entradaUC := appestoque.NewEntradaUseCase(s)

	_, err := entradaUC.Post(dto.CreateEntradaRequest{
		ItemName: "Chave de Fenda Phillips",
		Quantity: 40,
		Location: "Ferramentas",
		Category: "Ferramentas Manuais",
		Date:     "2023-11-10",
	})
	require.NoError(t, err)

	it := findItem(t, stockUC, "Chave de Fenda Phillips")
	assert.Equal(t, 40, it.Quantity)
	assert.Equal(t, "Ferramentas", it.Location)
	assert.Equal(t, "2023-11-10", it.LastUpdated, "item novo nasce com a data do lançamento")
}

func TestEntradaPost_LocalDesconhecidoFalha(t *testing.T) {
	s := seededStore(t)
	entradaUC := appestoque.NewEntradaUseCase(s)

	_, err := entradaUC.Post(dto.CreateEntradaRequest{
		ItemName: "Item Fantasma",
		Quantity: 10,
		Location: "Depósito Inexistente",
		Date:     "2023-11-10",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntradaDelete_DesfazSomenteSeSaldoPermitir(t *testing.T) {
	s := memory.NewStore()
	stockUC := appestoque.NewStockUseCase(s)
	entradaUC := appestoque.NewEntradaUseCase(s)
	saidaUC := appestoque.NewSaidaUseCase(s)
	locationUC := appestoque.NewLocationUseCase(s)

	_, err := locationUC.Add(dto.CreateLocationRequest{Name: "Corredor A"})
	require.NoError(t, err)
	rec, err := entradaUC.Post(dto.CreateEntradaRequest{
		ItemName: "Parafuso", Quantity: 100, Location: "Corredor A", Date: "2023-11-01",
	})
	require.NoError(t, err)

	// Consome parte do saldo que essa entrada trouxe.
	_, err = saidaUC.Post(dto.CreateSaidaRequest{ItemName: "Parafuso", Quantity: 30, Date: "2023-11-02"})
	require.NoError(t, err)

	err = entradaUC.Delete(rec.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "desfazer a entrada deixaria o saldo negativo")

	it := findItem(t, stockUC, "Parafuso")
	assert.Equal(t, 70, it.Quantity, "a exclusão recusada não pode mexer no saldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Saídas
// ──────────────────────────────────────────────────────────────────────────────

func TestSaidaPost_RecusaSemMexerNoEstado(t *testing.T) {
	s := seededStore(t)
	stockUC := appestoque.NewStockUseCase(s)
	saidaUC := appestoque.NewSaidaUseCase(s)

	before := findItem(t, stockUC, "Óleo Lubrificante WD-40")
	listBefore, err := saidaUC.List()
	require.NoError(t, err)

	_, err = saidaUC.Post(dto.CreateSaidaRequest{
		ItemName: "Óleo Lubrificante WD-40",
		Quantity: before.Quantity + 10,
		Date:     "2023-11-21",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	after := findItem(t, stockUC, "Óleo Lubrificante WD-40")
	listAfter, err := saidaUC.List()
	require.NoError(t, err)
	assert.Equal(t, before.Quantity, after.Quantity, "a quantidade não pode mudar quando a saída é recusada")
	assert.Equal(t, listBefore.Total, listAfter.Total, "nenhum registro pode ser gravado quando a saída é recusada")
}

func TestSaidaDelete_DevolveQuantidadeAoItem(t *testing.T) {
	s := seededStore(t)
	stockUC := appestoque.NewStockUseCase(s)
	saidaUC := appestoque.NewSaidaUseCase(s)

	rec, err := saidaUC.Post(dto.CreateSaidaRequest{
		ItemName: "Produto X", Quantity: 20, Date: "2023-11-21",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, findItem(t, stockUC, "Produto X").Quantity)

	require.NoError(t, saidaUC.Delete(rec.ID))
	assert.Equal(t, 120, findItem(t, stockUC, "Produto X").Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edição do catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestStockEdit_RenomeiaTambemOsRegistrosDoHistorico(t *testing.T) {
	s := seededStore(t)
	stockUC := appestoque.NewStockUseCase(s)
	entradaUC := appestoque.NewEntradaUseCase(s)

	_, err := stockUC.Edit("Produto X", dto.EditStockItemRequest{
		Name: "Produto X Plus", Category: "Eletrônicos", Location: "A1", LastUpdated: "2023-11-21",
	})
	require.NoError(t, err)

	entradas, err := entradaUC.List()
	require.NoError(t, err)
	for _, e := range entradas.Items {
		assert.NotEqual(t, "Produto X", e.ItemName, "nenhum registro pode continuar com o nome antigo")
	}
}

func TestStockDelete_RecusaItemComHistorico(t *testing.T) {
	s := seededStore(t)
	stockUC := appestoque.NewStockUseCase(s)

	err := stockUC.Delete("Produto X")
	assert.ErrorIs(t, err, domain.ErrConflict, "o item é referenciado pelo histórico de entradas")

	// Arruela não aparece em nenhum registro semeado.
	require.NoError(t, stockUC.Delete("Arruela Lisa M5"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Locais
// ──────────────────────────────────────────────────────────────────────────────

func TestLocationRename_PropagaAosItens(t *testing.T) {
	s := seededStore(t)
	stockUC := appestoque.NewStockUseCase(s)
	locationUC := appestoque.NewLocationUseCase(s)

	out, err := locationUC.Rename("Corredor A", dto.RenameLocationRequest{NewName: "Corredor A1"})
	require.NoError(t, err)
	assert.Contains(t, out.Locations, "Corredor A1")
	assert.NotContains(t, out.Locations, "Corredor A")

	it := findItem(t, stockUC, "Parafuso Allen M5x20")
	assert.Equal(t, "Corredor A1", it.Location)
}

func TestLocationDelete_RecusaLocalEmUso(t *testing.T) {
	s := seededStore(t)
	locationUC := appestoque.NewLocationUseCase(s)

	err := locationUC.Delete("Corredor B")
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Corredor C não abriga nenhum item semeado.
	require.NoError(t, locationUC.Delete("Corredor C"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Painel
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary_RestringeAoFiltro(t *testing.T) {
	s := seededStore(t)
	dashUC := appestoque.NewDashboardUseCase(s)

	all, err := dashUC.Summary(dto.StockFilterRequest{Type: "local", Location: "all", Category: "all", Month: "all"})
	require.NoError(t, err)
	assert.Equal(t, 670, all.TotalEntradas, "50 + 500 + 120 das entradas semeadas")
	assert.Equal(t, 3, all.RegistrosEntradas)
	assert.Equal(t, 10, all.TotalSaidas)
	assert.Equal(t, 1, all.RegistrosSaidas)

	corrB, err := dashUC.Summary(dto.StockFilterRequest{Enabled: true, Type: "local", Location: "Corredor B", Category: "all", Month: "all"})
	require.NoError(t, err)
	assert.Zero(t, corrB.TotalEntradas, "nenhuma entrada semeada pertence ao Corredor B")
	assert.Equal(t, 10, corrB.TotalSaidas, "a saída do óleo pertence ao Corredor B")
}

func TestDashboardFilterOptions(t *testing.T) {
	s := seededStore(t)
	dashUC := appestoque.NewDashboardUseCase(s)

	out, err := dashUC.FilterOptions()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A1", "Corredor A", "Corredor B"}, out.Locations)
	assert.ElementsMatch(t, []string{"Eletrônicos", "Ferragens", "Fixadores", "Químicos"}, out.Categories)
	require.NotEmpty(t, out.Months)
	assert.Equal(t, "all", out.Months[0], "o sentinela precisa vir em primeiro")
	assert.Equal(t, []string{"all", "2023-11", "2023-10"}, out.Months, "meses em ordem decrescente após o sentinela")
}
