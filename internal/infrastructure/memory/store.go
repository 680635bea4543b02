// Package memory guarda o estado da aplicação em memória de processo.
// Não há persistência: o estado é reconstruído (vazio ou com a carga de
// exemplo) a cada reinício.
package memory

import (
	"sync"

	appestoque "github.com/jhoicas/estoque-api/internal/application/estoque"
	"github.com/jhoicas/estoque-api/internal/domain/estoque"
)

// Ensure Store implements estoque.TxRunner.
var _ appestoque.TxRunner = (*Store)(nil)

// Store é o dono exclusivo dos agregados Catalog e Ledger. Um RWMutex
// serializa escritas e permite leituras concorrentes; cada caso de uso
// valida antes de mutar dentro do mesmo Run, então o estado observável
// nunca fica parcialmente aplicado.
type Store struct {
	mu  sync.RWMutex
	cat *estoque.Catalog
	led *estoque.Ledger
}

// NewStore constrói um store vazio.
func NewStore() *Store {
	return &Store{
		cat: estoque.NewCatalog(),
		led: estoque.NewLedger(),
	}
}

// Run executa fn com acesso exclusivo de escrita aos agregados.
func (s *Store) Run(fn func(cat *estoque.Catalog, led *estoque.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cat, s.led)
}

// View executa fn com acesso compartilhado de leitura.
func (s *Store) View(fn func(cat *estoque.Catalog, led *estoque.Ledger) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.cat, s.led)
}
