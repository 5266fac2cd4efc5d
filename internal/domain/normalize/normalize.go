// Package normalize centraliza las reglas de forma canónica de texto.
//
// Todo lo que se persiste (nombres, descripciones, responsables, destinos)
// va en MAYÚSCULAS sin espacios alrededor; la igualdad para deduplicación se
// calcula siempre sobre la forma trim+minúsculas, de modo que la comparación
// no dependa de cómo quedó guardado el texto.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lang = language.BrazilianPortuguese

// Canonical devuelve la forma canónica de almacenamiento: trim + MAYÚSCULAS.
func Canonical(s string) string {
	return cases.Upper(lang).String(strings.TrimSpace(s))
}

// Key devuelve la forma de comparación: trim + minúsculas.
func Key(s string) string {
	return cases.Lower(lang).String(strings.TrimSpace(s))
}

// Equal compara dos cadenas ignorando mayúsculas y espacios alrededor.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

// Title capitaliza cada palabra (para nombres de personas en los formularios;
// el ledger igual canonicaliza a MAYÚSCULAS antes de guardar).
func Title(s string) string {
	return cases.Title(lang).String(strings.TrimSpace(s))
}
