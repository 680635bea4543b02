package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrInvariant         = errors.New("violação de invariante interna")
)
