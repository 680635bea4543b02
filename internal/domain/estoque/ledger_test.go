package estoque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cenários do lançamento de entradas
// ──────────────────────────────────────────────────────────────────────────────

// TestPostEntrada_EDeleteEntrada cobre o cenário de referência: item
// "Parafuso" com 100 unidades recebe entrada de 50 (fica 150) e a exclusão
// da entrada devolve o estoque a 100.
func TestPostEntrada_EDeleteEntrada(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("A1"))
	require.NoError(t, cat.AddItem(&entity.StockItem{
		Name: "Parafuso", Quantity: 100, Location: "A1", Category: "Fixadores", LastUpdated: "2024-01-01",
	}))

	e, err := led.PostEntrada(cat, "Parafuso", 50, "A1", "Fixadores", "2024-01-10")
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, 50, e.Quantity)
	assert.Equal(t, 150, cat.FindItem("Parafuso").Quantity, "a entrada deve somar ao estoque")

	require.NoError(t, led.DeleteEntrada(cat, e.ID))
	assert.Equal(t, 100, cat.FindItem("Parafuso").Quantity, "excluir a entrada deve reverter o efeito")
	assert.Empty(t, led.Entradas(), "o registro deve sair do histórico")

	assert.ErrorIs(t, led.DeleteEntrada(cat, e.ID), domain.ErrNotFound,
		"id excluído não é mais resolvível")
}

func TestPostEntrada_CriaItemEGuardaNomeCanonico(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("Corredor A"))

	e, err := led.PostEntrada(cat, "Arruela Lisa M5", 200, "Corredor A", "Fixadores", "2024-02-01")
	require.NoError(t, err)
	require.NotNil(t, cat.FindItem("Arruela Lisa M5"), "entrada para nome desconhecido cria o item")

	// Segunda entrada digitada com caixa diferente: o registro deve carregar
	// o nome canônico, mantendo o histórico resolvível.
	e2, err := led.PostEntrada(cat, "ARRUELA LISA M5", 100, "Corredor A", "Fixadores", "2024-02-02")
	require.NoError(t, err)
	assert.Equal(t, e.ItemName, e2.ItemName)
	assert.Equal(t, 300, cat.FindItem("arruela lisa m5").Quantity)
}

func TestEditEntrada_AjustaPelaDiferenca(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("A1"))

	e, err := led.PostEntrada(cat, "Parafuso", 50, "A1", "Fixadores", "2024-01-10")
	require.NoError(t, err)

	_, err = led.EditEntrada(cat, e.ID, 80, "2024-01-11")
	require.NoError(t, err)
	assert.Equal(t, 80, cat.FindItem("Parafuso").Quantity, "aumento de 50→80 soma 30 ao item")
	assert.Equal(t, "2024-01-11", e.Date)

	_, err = led.EditEntrada(cat, e.ID, 10, "2024-01-11")
	require.NoError(t, err)
	assert.Equal(t, 10, cat.FindItem("Parafuso").Quantity, "redução de 80→10 subtrai 70")
}

func TestEditEntrada_ReducaoNaoPodeNegativarEstoque(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("A1"))

	e, err := led.PostEntrada(cat, "Parafuso", 50, "A1", "Fixadores", "2024-01-10")
	require.NoError(t, err)
	// Uma saída consome parte da entrada; reduzir a entrada abaixo do que
	// restou deixaria o estoque negativo.
	_, err = led.PostSaida(cat, "Parafuso", 40, "2024-01-12", "")
	require.NoError(t, err)

	_, err = led.EditEntrada(cat, e.ID, 5, "2024-01-13")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, cat.FindItem("Parafuso").Quantity, "a falha não pode mutar o estado")
	assert.Equal(t, 50, e.Quantity, "a falha não pode mutar o registro")
}

func TestDeleteEntrada_GuardaSimetrica(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("A1"))

	e, err := led.PostEntrada(cat, "Parafuso", 50, "A1", "Fixadores", "2024-01-10")
	require.NoError(t, err)
	_, err = led.PostSaida(cat, "Parafuso", 30, "2024-01-12", "")
	require.NoError(t, err)

	err = led.DeleteEntrada(cat, e.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"reverter a entrada negativaria o estoque, então a exclusão falha")
	assert.Len(t, led.Entradas(), 1, "o registro permanece")
	assert.Equal(t, 20, cat.FindItem("Parafuso").Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenários do lançamento de saídas
// ──────────────────────────────────────────────────────────────────────────────

// TestPostSaida_EstoqueInsuficiente cobre o cenário de referência: item
// "Óleo" com 50 unidades rejeita saída de 60 e aceita saída de 30.
func TestPostSaida_EstoqueInsuficiente(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("Corredor B"))
	require.NoError(t, cat.AddItem(&entity.StockItem{
		Name: "Óleo", Quantity: 50, Location: "Corredor B", Category: "Químicos", LastUpdated: "2024-01-01",
	}))

	_, err := led.PostSaida(cat, "Óleo", 60, "2024-01-05", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 50, cat.FindItem("Óleo").Quantity, "a falha não pode alterar o estoque")
	assert.Empty(t, led.Saidas())

	s, err := led.PostSaida(cat, "Óleo", 30, "2024-01-05", "Manutenção preventiva")
	require.NoError(t, err)
	assert.Equal(t, 20, cat.FindItem("Óleo").Quantity)
	assert.Equal(t, "Manutenção preventiva", s.Observation)
}

func TestPostSaida_ItemInexistente(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()

	_, err := led.PostSaida(cat, "Fantasma", 1, "2024-01-05", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditSaida_AumentoLimitadoPeloEstoque(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("A1"))
	require.NoError(t, cat.AddItem(&entity.StockItem{
		Name: "Peça", Quantity: 100, Location: "A1", Category: "Geral", LastUpdated: "2024-01-01",
	}))

	s, err := led.PostSaida(cat, "Peça", 40, "2024-01-05", "")
	require.NoError(t, err) // estoque: 60

	// Aumento de 40→170 exigiria 110 a mais; só há 60 disponíveis.
	_, err = led.EditSaida(cat, s.ID, 170, "obs", "2024-01-06")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 60, cat.FindItem("Peça").Quantity)
	assert.Equal(t, 40, s.Quantity)

	// Aumento dentro do disponível.
	_, err = led.EditSaida(cat, s.ID, 100, "obs", "2024-01-06")
	require.NoError(t, err)
	assert.Equal(t, 0, cat.FindItem("Peça").Quantity)

	// Redução sempre sucede.
	_, err = led.EditSaida(cat, s.ID, 10, "menos", "2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, 90, cat.FindItem("Peça").Quantity)
	assert.Equal(t, "menos", s.Observation)
}

func TestDeleteSaida_DevolveAoEstoque(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("A1"))
	require.NoError(t, cat.AddItem(&entity.StockItem{
		Name: "Peça", Quantity: 100, Location: "A1", Category: "Geral", LastUpdated: "2024-01-01",
	}))

	s, err := led.PostSaida(cat, "Peça", 25, "2024-01-05", "")
	require.NoError(t, err)
	require.NoError(t, led.DeleteSaida(cat, s.ID))

	assert.Equal(t, 100, cat.FindItem("Peça").Quantity)
	assert.Empty(t, led.Saidas())
}

// ──────────────────────────────────────────────────────────────────────────────
// Propriedade de consistência do histórico
// ──────────────────────────────────────────────────────────────────────────────

// TestInvariante_QuantidadeIgualSomaDoHistorico aplica uma sequência mista de
// operações e verifica que a quantidade do item sempre iguala a quantidade
// inicial mais a soma das entradas vivas menos a soma das saídas vivas.
func TestInvariante_QuantidadeIgualSomaDoHistorico(t *testing.T) {
	const inicial = 100
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("A1"))
	require.NoError(t, cat.AddItem(&entity.StockItem{
		Name: "Peça", Quantity: inicial, Location: "A1", Category: "Geral", LastUpdated: "2024-01-01",
	}))

	verifica := func() {
		t.Helper()
		total := inicial
		for _, e := range led.Entradas() {
			total += e.Quantity
		}
		for _, s := range led.Saidas() {
			total -= s.Quantity
		}
		assert.Equal(t, total, cat.FindItem("Peça").Quantity,
			"quantidade = inicial + Σ entradas vivas − Σ saídas vivas")
	}

	e1, err := led.PostEntrada(cat, "Peça", 50, "A1", "Geral", "2024-01-02")
	require.NoError(t, err)
	verifica()

	e2, err := led.PostEntrada(cat, "Peça", 30, "A1", "Geral", "2024-01-03")
	require.NoError(t, err)
	verifica()

	s1, err := led.PostSaida(cat, "Peça", 60, "2024-01-04", "")
	require.NoError(t, err)
	verifica()

	_, err = led.EditEntrada(cat, e1.ID, 70, "2024-01-02")
	require.NoError(t, err)
	verifica()

	_, err = led.EditSaida(cat, s1.ID, 90, "", "2024-01-04")
	require.NoError(t, err)
	verifica()

	require.NoError(t, led.DeleteEntrada(cat, e2.ID))
	verifica()

	require.NoError(t, led.DeleteSaida(cat, s1.ID))
	verifica()
}

// ──────────────────────────────────────────────────────────────────────────────
// Renomeação em cascata
// ──────────────────────────────────────────────────────────────────────────────

func TestRenameItem_VarreAsDuasColecoes(t *testing.T) {
	cat := estoque.NewCatalog()
	led := estoque.NewLedger()
	require.NoError(t, cat.AddLocation("A1"))

	_, err := led.PostEntrada(cat, "Produto X", 50, "A1", "Eletrônicos", "2024-01-02")
	require.NoError(t, err)
	_, err = led.PostSaida(cat, "Produto X", 10, "2024-01-03", "")
	require.NoError(t, err)

	_, err = cat.EditItem("Produto X", "Produto Y", "Eletrônicos", "A1", "2024-01-04")
	require.NoError(t, err)
	led.RenameItem("Produto X", "Produto Y")

	for _, e := range led.Entradas() {
		assert.Equal(t, "Produto Y", e.ItemName, "nenhuma entrada pode referenciar o nome antigo")
	}
	for _, s := range led.Saidas() {
		assert.Equal(t, "Produto Y", s.ItemName, "nenhuma saída pode referenciar o nome antigo")
	}
	assert.False(t, led.HasRecordsFor("Produto X"))
	assert.True(t, led.HasRecordsFor("produto y"))
}
