package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalogValidates(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if len(c.Categories) != 20 {
		t.Errorf("categories = %d, want 20", len(c.Categories))
	}
	// Declared order drives extraction; laptop must stay first.
	if c.Categories[0].ID != "laptop" {
		t.Errorf("first category = %q, want laptop", c.Categories[0].ID)
	}
}

func TestCategoryLookup(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	got, ok := c.Category("smart bulb")
	if !ok {
		t.Fatal("Category(smart bulb) not found")
	}
	if got.Price.Min != 500 || got.Price.Max != 3000 {
		t.Errorf("smart bulb price range = [%d, %d], want [500, 3000]", got.Price.Min, got.Price.Max)
	}
	if _, ok := c.Category("spaceship"); ok {
		t.Error("Category(spaceship) found, want miss")
	}
}

func TestTemplateSlots(t *testing.T) {
	slots := TemplateSlots("{screen_size}-inch {display_type} display, {os}.")
	want := []string{"screen_size", "display_type", "os"}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i], want[i])
		}
	}
}

func validCatalog() *Catalog {
	return &Catalog{
		Categories: []Category{{
			ID:       "widget",
			Price:    PriceRange{Min: 100, Max: 200},
			Template: "{color} widget.",
			Specs:    map[string][]string{"color": {"red", "blue"}},
		}},
		Shipping: map[string]ShippingOption{
			"standard": {Cost: "₹99", Time: "3-5 business days"},
			"express":  {Cost: "₹199", Time: "1-2 business days"},
		},
		Intents: map[string][]string{
			"greeting": {"hi"},
			"buy":      {"buy"},
			"price":    {"price"},
			"details":  {"details"},
			"stock":    {"stock"},
			"shipping": {"shipping"},
			"cart":     {"cart"},
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validCatalog().Validate(); err != nil {
		t.Fatalf("valid catalog rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantErr string
	}{
		{
			name:    "template references unknown slot",
			mutate:  func(c *Catalog) { c.Categories[0].Template = "{color} widget with {handle}." },
			wantErr: "unknown slot",
		},
		{
			name:    "slot with no candidates",
			mutate:  func(c *Catalog) { c.Categories[0].Specs["color"] = nil },
			wantErr: "no candidate values",
		},
		{
			name:    "inverted price range",
			mutate:  func(c *Catalog) { c.Categories[0].Price = PriceRange{Min: 200, Max: 100} },
			wantErr: "invalid price range",
		},
		{
			name:    "missing shipping method",
			mutate:  func(c *Catalog) { delete(c.Shipping, "express") },
			wantErr: "missing shipping option",
		},
		{
			name:    "intent without keywords",
			mutate:  func(c *Catalog) { c.Intents["cart"] = nil },
			wantErr: "no keywords",
		},
		{
			name:    "duplicate category",
			mutate:  func(c *Catalog) { c.Categories = append(c.Categories, c.Categories[0]) },
			wantErr: "duplicate category",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCatalog()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("categories: [")); err == nil {
		t.Error("Parse() = nil, want error")
	}
}
