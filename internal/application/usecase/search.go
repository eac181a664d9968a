package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeQuery prepara un término de búsqueda libre: minúsculas, sin
// acentos y sin espacios en los bordes, para que "José" encuentre "jose".
// El lado SQL aplica unaccent(lower(...)) sobre las columnas, así que ambos
// lados comparan en la misma forma.
func normalizeQuery(q string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, q)
	if err != nil {
		out = q
	}
	return strings.ToLower(strings.TrimSpace(out))
}
