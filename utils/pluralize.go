package utils

import "fmt"

// Pluralize prefixes noun with count, adding an "s" unless count is 1.
func Pluralize(noun string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
