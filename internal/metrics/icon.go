package metrics

import "github.com/pkordes/mileage-logbook/internal/domain"

const fallbackIcon = "🚗"

var categoryIcons = map[domain.Category]string{
	domain.CategoryPersonal:  "🏠",
	domain.CategoryBusiness:  "💼",
	domain.CategoryCommute:   "🚦",
	domain.CategoryShopping:  "🛒",
	domain.CategoryVacation:  "🏖️",
	domain.CategoryMedical:   "🏥",
	domain.CategoryEducation: "🎓",
	domain.CategoryFamily:    "👪",
	domain.CategoryOther:     "📍",
}

// CategoryIcon returns the display glyph for c, or a car for unknown categories.
func CategoryIcon(c domain.Category) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return fallbackIcon
}
