package search

import (
	"strings"
	"unicode"
)

const maxVariants = 10

type Query struct {
	Original   string
	Normalized string
	Variants   []string
}

// NormalizeQuery lower-cases the input, keeps letters, digits and the
// characters that appear in skill names (+ # .), and collapses whitespace.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r), r == '+', r == '#', r == '.':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == ',', r == '-', r == '/':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ExpandQuery returns the normalized query followed by synonym variants. A
// synonym of the leading word keeps the rest of the query attached, so
// "golang remote" also yields "go remote".
func ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	for _, syn := range GetSynonyms(normalized) {
		add(syn)
	}

	words := strings.Fields(normalized)
	tryPrefix := func(phrase string, rest []string) {
		restStr := strings.Join(rest, " ")
		for _, syn := range GetSynonyms(phrase) {
			add(syn + " " + restStr)
		}
	}
	if len(words) >= 2 {
		tryPrefix(words[0], words[1:])
	}
	if len(words) >= 3 {
		tryPrefix(words[0]+" "+words[1], words[2:])
	}

	// Compact spellings of spaced phrases: "frontend" is already a key, but
	// "backend" typed as "back end" should still reach its synonyms.
	joined := strings.ReplaceAll(normalized, " ", "")
	if joined != normalized {
		for _, syn := range GetSynonyms(joined) {
			add(syn)
		}
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

func ProcessQuery(input string) Query {
	q := Query{Original: input}
	q.Normalized = NormalizeQuery(input)
	if q.Normalized == "" {
		q.Variants = []string{}
		return q
	}
	q.Variants = ExpandQuery(q.Normalized)
	return q
}
