package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Kind selects which table a suggestion is drawn from
type Kind int

const (
	KindFish Kind = iota
	KindPlant
	KindEquipment
	KindEvent
)

// Suggest returns the closest id of the given kind for a mistyped query,
// or "" when nothing resembles it.
func (c *Catalog) Suggest(kind Kind, query string) string {
	var candidates []string
	switch kind {
	case KindFish:
		candidates = c.fishIDs
	case KindPlant:
		candidates = c.plantIDs
	case KindEquipment:
		candidates = c.EquipmentIDs()
	case KindEvent:
		candidates = c.EventIDs()
	}
	return SuggestFrom(query, candidates)
}

// SuggestFrom picks the best fuzzy match for query among candidates
func SuggestFrom(query string, candidates []string) string {
	query = strings.TrimSpace(query)
	if query == "" || len(candidates) == 0 {
		return ""
	}

	matches := fuzzy.Find(query, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
