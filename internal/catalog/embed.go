package catalog

import _ "embed"

//go:embed catalog.yaml
var defaultYAML []byte

// Default parses the catalog embedded in the binary. It is the data set
// served when no CATALOG_FILE override is configured.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}
