package search

// Synonyms maps a normalized query phrase to alternative phrasings employers
// tend to use in titles and skill lists.
var Synonyms = map[string][]string{
	"frontend": {"front end", "frontend developer", "ui developer"},
	"backend":  {"back end", "server developer"},
	"golang":   {"go"},
	"js":       {"javascript"},
	"ts":       {"typescript"},
	"k8s":      {"kubernetes"},
	"devops":   {"site reliability", "platform engineer"},
	"designer": {"ui designer", "graphic designer", "product designer"},
	"intern":   {"internship", "trainee"},
}

func GetSynonyms(phrase string) []string {
	if phrase == "" {
		return []string{}
	}
	if v, ok := Synonyms[phrase]; ok {
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	}
	return []string{}
}
