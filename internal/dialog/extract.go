package dialog

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"eshop-chatbot/internal/catalog"
)

// Mention is a product reference extracted from a message. The price is
// sampled fresh from the category's range on every extraction, so two
// mentions of the same category may carry different prices.
type Mention struct {
	Name     string
	Category string
	Price    int
}

var usdRe = regexp.MustCompile(`\$(\d+)`)

// Tokens that never count as a product qualifier ("a laptop" is just a
// laptop, "gaming laptop" is not).
var qualifierStopwords = map[string]bool{
	"a":   true,
	"to":  true,
	"i":   true,
	"the": true,
}

// Extractor derives structured signals from raw message text. The random
// source is injected so price sampling can be seeded in tests.
type Extractor struct {
	cat *catalog.Catalog
	rng *rand.Rand
}

func NewExtractor(cat *catalog.Catalog, rng *rand.Rand) *Extractor {
	return &Extractor{cat: cat, rng: rng}
}

// UsdAmount returns the first dollar-prefixed whole number in the message,
// e.g. "$50". Decimals and later amounts are ignored.
func (e *Extractor) UsdAmount(text string) (int, bool) {
	m := usdRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Product scans the message for a known category, walking the catalog in its
// declared order and taking the first hit. The token right before the
// category becomes a qualifier in the display name unless it is a stopword.
func (e *Extractor) Product(text string) (Mention, bool) {
	tokens := tokenize(strings.ToLower(text))
	for _, cat := range e.cat.Categories {
		idx := findTokenSequence(tokens, strings.Fields(cat.ID))
		if idx < 0 {
			continue
		}
		name := cat.ID
		if idx > 0 && !qualifierStopwords[tokens[idx-1]] {
			name = tokens[idx-1] + " " + cat.ID
		}
		price := cat.Price.Min + e.rng.Intn(cat.Price.Max-cat.Price.Min+1)
		return Mention{Name: name, Category: cat.ID, Price: price}, true
	}
	return Mention{}, false
}

// findTokenSequence returns the index where seq first appears in tokens as a
// contiguous run, or -1. Handles multi-word categories like "smart bulb".
func findTokenSequence(tokens, seq []string) int {
	if len(seq) == 0 {
		return -1
	}
	for i := 0; i+len(seq) <= len(tokens); i++ {
		match := true
		for j, w := range seq {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
