// Package strutil holds string helpers: numeric conversion, accent folding,
// fuzzy similarity and tolerant parsing of dates and amounts found in documents.
package strutil

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ConvertToInt converts a string to int, returning 0 when it is not a number
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ConvertToInt64 converts a string to int64, returning 0 when it is not a number
func ConvertToInt64(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FoldAccents removes combining marks, e.g. "Conceição" -> "Conceicao".
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize folds accents, lower-cases, turns punctuation into spaces and
// collapses whitespace so names can be compared loosely.
func Normalize(s string) string {
	folded := strings.ToLower(FoldAccents(s))
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)
	return strings.Join(strings.Fields(mapped), " ")
}

// Similarity returns 1 - levenshtein(a, b) / max(len(a), len(b)) over runes.
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// NameScore compares two free-form names: exact normalized match scores 1,
// containment of one in the other 0.9, otherwise their Similarity.
func NameScore(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.9
	}
	return Similarity(na, nb)
}

// Slug turns a name into a lower-case, dash separated ASCII token for file names
func Slug(s string) string {
	slug := strings.ReplaceAll(Normalize(s), " ", "-")
	if slug == "" {
		return "sem-nome"
	}
	return slug
}
