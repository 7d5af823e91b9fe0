package scheduling

import (
	"strings"

	"medicare-portal/internal/domain/entity"
)

// SpecializationAll disables the specialization tag filter.
const SpecializationAll = "All"

// FilterDoctors narrows a doctor directory by a free-text search term and an
// exact specialization tag. The search is a case-insensitive substring match
// against the doctor's name or specialization; combining both filters yields
// their intersection.
func FilterDoctors(doctors []entity.Doctor, search, specialization string) []entity.Doctor {
	term := strings.ToLower(strings.TrimSpace(search))
	tag := strings.TrimSpace(specialization)

	filtered := make([]entity.Doctor, 0, len(doctors))
	for _, doc := range doctors {
		if term != "" &&
			!strings.Contains(strings.ToLower(doc.Name), term) &&
			!strings.Contains(strings.ToLower(doc.Specialization), term) {
			continue
		}
		if tag != "" && tag != SpecializationAll && doc.Specialization != tag {
			continue
		}
		filtered = append(filtered, doc)
	}
	return filtered
}
