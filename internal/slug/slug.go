// Package slug derives stable builder identifiers from display names.
package slug

import "strings"

// Prefix marks ids minted by this service.
const Prefix = "morlord-"

// CreateID turns a display name into a url-safe id:
// "My  Project" -> "morlord-my-project".
func CreateID(name string) string {
	return Prefix + strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// ExtractName reverses CreateID up to case and whitespace collapsing:
// "morlord-my-project" -> "my project". Ids without the prefix are returned
// with dashes mapped back to spaces so stale upstream ids still resolve.
func ExtractName(id string) string {
	id = strings.TrimPrefix(id, Prefix)
	return strings.ReplaceAll(id, "-", " ")
}
