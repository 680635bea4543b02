package estoque

import "golang.org/x/text/cases"

// foldName normaliza um nome para servir de chave do índice: case folding
// Unicode completo, para que "óleo" e "ÓLEO" resolvam para o mesmo item.
// Um Caser é stateful, então cria-se um por chamada.
func foldName(s string) string {
	return cases.Fold().String(s)
}
