package dialog

import (
	"math/rand"
	"testing"

	"eshop-chatbot/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}
	return c
}

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(testCatalog(t), rand.New(rand.NewSource(1)))
}

func TestUsdAmount(t *testing.T) {
	ex := newTestExtractor(t)

	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"$50 please", 50, true},
		{"no amount here", 0, false},
		{"costs $1200 or maybe $99", 1200, true},
		{"I have 50 dollars", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ex.UsdAmount(tt.text)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("UsdAmount(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestProductNoCategory(t *testing.T) {
	ex := newTestExtractor(t)
	if _, ok := ex.Product("tell me a joke"); ok {
		t.Error("Product() matched text with no category")
	}
	if _, ok := ex.Product(""); ok {
		t.Error("Product() matched empty text")
	}
}

func TestProductEveryCategory(t *testing.T) {
	cat := testCatalog(t)
	ex := NewExtractor(cat, rand.New(rand.NewSource(42)))
	for _, c := range cat.Categories {
		m, ok := ex.Product("price of a " + c.ID)
		if !ok {
			t.Errorf("Product() missed category %q", c.ID)
			continue
		}
		if m.Category != c.ID {
			t.Errorf("Product(%q) category = %q, want %q", c.ID, m.Category, c.ID)
		}
		if m.Price < c.Price.Min || m.Price > c.Price.Max {
			t.Errorf("Product(%q) price = %d, outside [%d, %d]", c.ID, m.Price, c.Price.Min, c.Price.Max)
		}
	}
}

func TestProductQualifier(t *testing.T) {
	ex := newTestExtractor(t)

	tests := []struct {
		text     string
		wantName string
		wantCat  string
	}{
		{"I want a gaming laptop", "gaming laptop", "laptop"},
		{"buy a laptop", "laptop", "laptop"},
		{"price of the tv", "tv", "tv"},
		{"get me a wireless mouse", "wireless mouse", "mouse"},
		{"smart bulb please", "smart bulb", "smart bulb"},
		{"order a gaming console", "gaming console", "gaming console"},
		{"Laptop!", "laptop", "laptop"},
	}
	for _, tt := range tests {
		m, ok := ex.Product(tt.text)
		if !ok {
			t.Errorf("Product(%q) found nothing", tt.text)
			continue
		}
		if m.Name != tt.wantName || m.Category != tt.wantCat {
			t.Errorf("Product(%q) = (%q, %q), want (%q, %q)", tt.text, m.Name, m.Category, tt.wantName, tt.wantCat)
		}
	}
}

func TestProductFirstCategoryWins(t *testing.T) {
	ex := newTestExtractor(t)
	// laptop is declared before mouse; declared order breaks the tie.
	m, ok := ex.Product("laptop or mouse?")
	if !ok {
		t.Fatal("Product() found nothing")
	}
	if m.Category != "laptop" {
		t.Errorf("category = %q, want laptop (declared-order winner)", m.Category)
	}
}

func TestProductResamplesPrice(t *testing.T) {
	ex := newTestExtractor(t)
	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		m, ok := ex.Product("buy a laptop")
		if !ok {
			t.Fatal("Product() found nothing")
		}
		seen[m.Price] = true
	}
	if len(seen) < 2 {
		t.Error("price never varied across 50 extractions")
	}
}
