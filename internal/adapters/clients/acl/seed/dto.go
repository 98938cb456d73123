// Package seed implements the Anti-Corruption Layer translators for the
// downstream seed catalogue's list templates.
package seed

// CatalogueDTO matches the downstream catalogue response.
type CatalogueDTO struct {
	Lists []ListDTO `json:"lists"`
}

// ListDTO is one list template. The catalogue calls the title "name".
type ListDTO struct {
	Name  string    `json:"name"`
	Items []ItemDTO `json:"items"`
}

// ItemDTO is one entry of a list template.
type ItemDTO struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}
