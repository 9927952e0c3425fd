// Package catalog holds the store's configuration data: product categories
// with price ranges and detail templates, shipping options, and the keyword
// tables that drive intent matching. The data is pure configuration, loaded
// from YAML and validated once at startup.
package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// PriceRange is an inclusive price interval in INR.
type PriceRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Category is one product type. Specs maps template slot names to the
// candidate values the detail renderer samples from.
type Category struct {
	ID       string              `yaml:"id"`
	Price    PriceRange          `yaml:"price"`
	Template string              `yaml:"template"`
	Specs    map[string][]string `yaml:"specs"`
}

// ShippingOption describes one delivery method.
type ShippingOption struct {
	Cost string `yaml:"cost"`
	Time string `yaml:"time"`
}

// Catalog is the full configuration. Categories keeps its declared order,
// which is significant: product extraction scans it front to back and the
// first matching category wins.
type Catalog struct {
	Categories []Category                `yaml:"categories"`
	Shipping   map[string]ShippingOption `yaml:"shipping"`
	Intents    map[string][]string       `yaml:"intents"`
}

// Intents every catalog must define a keyword list for.
var requiredIntents = []string{"greeting", "buy", "price", "details", "stock", "shipping", "cart"}

var slotRe = regexp.MustCompile(`\{([a-zA-Z_]+)\}`)

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

// Parse unmarshals and validates catalog YAML.
func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// Keywords returns the synonym list for an intent. Missing intents are
// ruled out by Validate, so callers may use the result directly.
func (c *Catalog) Keywords(intent string) []string {
	return c.Intents[intent]
}

// TemplateSlots lists the slot names referenced by a detail template, in
// template order.
func TemplateSlots(template string) []string {
	var slots []string
	for _, m := range slotRe.FindAllStringSubmatch(template, -1) {
		slots = append(slots, m[1])
	}
	return slots
}

// Validate checks the internal consistency required by the dialogue engine:
// every category carries a price range, a template and spec options covering
// every slot the template references, shipping defines both methods, and
// every intent has at least one keyword. A validation failure is a
// configuration error and must abort startup.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog: no categories defined")
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("catalog: category with empty id")
		}
		if seen[cat.ID] {
			return fmt.Errorf("catalog: duplicate category %q", cat.ID)
		}
		seen[cat.ID] = true
		if cat.Price.Min <= 0 || cat.Price.Max < cat.Price.Min {
			return fmt.Errorf("catalog: category %q has invalid price range [%d, %d]", cat.ID, cat.Price.Min, cat.Price.Max)
		}
		if cat.Template == "" {
			return fmt.Errorf("catalog: category %q has no detail template", cat.ID)
		}
		slots := TemplateSlots(cat.Template)
		if len(slots) == 0 {
			return fmt.Errorf("catalog: category %q template has no slots", cat.ID)
		}
		for _, slot := range slots {
			values, ok := cat.Specs[slot]
			if !ok {
				return fmt.Errorf("catalog: category %q template references unknown slot %q", cat.ID, slot)
			}
			if len(values) == 0 {
				return fmt.Errorf("catalog: category %q slot %q has no candidate values", cat.ID, slot)
			}
		}
	}
	for _, method := range []string{"standard", "express"} {
		opt, ok := c.Shipping[method]
		if !ok {
			return fmt.Errorf("catalog: missing shipping option %q", method)
		}
		if opt.Cost == "" || opt.Time == "" {
			return fmt.Errorf("catalog: shipping option %q is incomplete", method)
		}
	}
	for _, intent := range requiredIntents {
		if len(c.Intents[intent]) == 0 {
			return fmt.Errorf("catalog: intent %q has no keywords", intent)
		}
	}
	return nil
}
