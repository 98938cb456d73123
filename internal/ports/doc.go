// Package ports holds the interfaces the layers meet at. The HTML and JSON
// handlers call [ListService]; the application layer calls [SessionStore]
// and [SeedSource], which the session and seed adapters implement.
package ports
