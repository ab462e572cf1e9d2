package summary

import "strings"

// defaultIcon is used when no keyword matches the purpose.
const defaultIcon = "🚗"

// purposeIcons is checked in order; the first keyword contained in the
// lower-cased purpose wins.
var purposeIcons = []struct {
	icon     string
	keywords []string
}{
	{"💼", []string{"work", "office", "job", "business"}},
	{"🛒", []string{"shop", "store", "mall", "grocery", "market"}},
	{"🎓", []string{"school", "college", "university", "class"}},
	{"🏖️", []string{"vacation", "holiday", "trip", "travel"}},
	{"👪", []string{"family", "friend", "visit", "relative"}},
	{"🏥", []string{"doctor", "hospital", "medical", "health"}},
	{"🏋️", []string{"gym", "exercise", "workout", "fitness"}},
	{"🍽️", []string{"restaurant", "dinner", "lunch", "eat", "food"}},
}

// PurposeIcon returns the icon for a free-text journey purpose.
func PurposeIcon(purpose string) string {
	p := strings.ToLower(strings.TrimSpace(purpose))
	if p == "" {
		return defaultIcon
	}
	for _, entry := range purposeIcons {
		for _, kw := range entry.keywords {
			if strings.Contains(p, kw) {
				return entry.icon
			}
		}
	}
	return defaultIcon
}
