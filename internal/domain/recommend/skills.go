package recommend

import (
	"sort"
	"strings"
)

// SkillSet is a set of normalized skill tokens. The zero value is an empty set.
type SkillSet struct {
	tokens map[string]struct{}
}

// NormalizeSkill trims, lower-cases and collapses inner whitespace. It is the
// only normalization used for skills, on both the write and the read path.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// ParseSkills splits comma separated text into a normalized set. Blank or
// delimiter-only text yields an empty set.
func ParseSkills(text string) SkillSet {
	if strings.TrimSpace(text) == "" {
		return SkillSet{}
	}
	return NewSkillSet(strings.Split(text, ",")...)
}

func NewSkillSet(names ...string) SkillSet {
	set := SkillSet{tokens: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = NormalizeSkill(n)
		if n == "" {
			continue
		}
		set.tokens[n] = struct{}{}
	}
	return set
}

func (s SkillSet) Len() int {
	return len(s.tokens)
}

func (s SkillSet) Has(name string) bool {
	if len(s.tokens) == 0 {
		return false
	}
	_, ok := s.tokens[NormalizeSkill(name)]
	return ok
}

// Sorted returns the tokens in ascending order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s.tokens))
	for t := range s.tokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// String renders the set back into the comma separated form ParseSkills accepts.
func (s SkillSet) String() string {
	return strings.Join(s.Sorted(), ", ")
}

// Split partitions the tokens of s into those present in other and those
// missing from it. Both slices are sorted.
func (s SkillSet) Split(other SkillSet) (matched, missing []string) {
	matched = make([]string, 0, len(s.tokens))
	missing = make([]string, 0)
	for _, t := range s.Sorted() {
		if _, ok := other.tokens[t]; ok {
			matched = append(matched, t)
			continue
		}
		missing = append(missing, t)
	}
	return matched, missing
}

// Intersect counts the tokens present in both sets.
func (s SkillSet) Intersect(other SkillSet) int {
	small, large := s.tokens, other.tokens
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for t := range small {
		if _, ok := large[t]; ok {
			n++
		}
	}
	return n
}
