package dialog

import (
	"fmt"
	"math/rand"
	"regexp"

	"eshop-chatbot/internal/catalog"
)

var detailSlotRe = regexp.MustCompile(`\{([a-zA-Z_]+)\}`)

// Renderer fills a category's detail template by sampling one candidate per
// slot. Every call re-samples, so repeated renders for the same category can
// differ. The random source is injected for deterministic tests.
type Renderer struct {
	cat *catalog.Catalog
	rng *rand.Rand
}

func NewRenderer(cat *catalog.Catalog, rng *rand.Rand) *Renderer {
	return &Renderer{cat: cat, rng: rng}
}

// Details renders the spec description for a category. An unknown category
// or a template slot without spec options is a configuration error; catalogs
// are validated at startup, so neither can occur for shipped data.
func (r *Renderer) Details(categoryID string) (string, error) {
	cat, ok := r.cat.Category(categoryID)
	if !ok {
		return "", fmt.Errorf("details: unknown category %q", categoryID)
	}
	var missing string
	out := detailSlotRe.ReplaceAllStringFunc(cat.Template, func(m string) string {
		slot := m[1 : len(m)-1]
		values := cat.Specs[slot]
		if len(values) == 0 {
			missing = slot
			return m
		}
		return values[r.rng.Intn(len(values))]
	})
	if missing != "" {
		return "", fmt.Errorf("details: category %q has no spec options for slot %q", categoryID, missing)
	}
	return out, nil
}
