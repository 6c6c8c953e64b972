package service

import "errors"

// Sentinel errors shared by the ledger services. Handlers map
// ErrNaoEncontrado to 404 and ErrLivroInvalido to 400; anything else is a
// store failure surfaced as 500.
var (
	ErrNaoEncontrado = errors.New("registo não encontrado")
	ErrLivroInvalido = errors.New("livro inválido")
	ErrDataInvalida  = errors.New("data inválida: use o formato AAAA-MM-DD")
)
