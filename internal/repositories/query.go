package repositories

import "strings"

// singleLine collapses a query onto one line for logging.
func singleLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
