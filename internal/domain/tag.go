package domain

import "strings"

// tagSeparator joins tags in the stored representation.
const tagSeparator = ", "

// ParseTags splits a comma-separated tag string into trimmed, non-empty labels.
// Order is preserved and duplicates are kept.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// FormatTags joins tags for storage. ParseTags(FormatTags(t)) == t for any
// list of trimmed, non-empty labels without commas.
func FormatTags(tags []string) string {
	return strings.Join(tags, tagSeparator)
}

// TagCount is a tag label and the number of journeys that carry it.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
