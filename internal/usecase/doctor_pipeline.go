package usecase

import (
	"cmp"
	"slices"
	"strings"

	"doctor-finder/internal/domain/entity"

	"golang.org/x/text/cases"
)

// MaxSuggestions caps the autocomplete dropdown.
const MaxSuggestions = 3

// nameMatcher reports whether names contain a query, ignoring case.
// A cases.Caser is stateful, so each matcher owns one.
type nameMatcher struct {
	caser  cases.Caser
	needle string
}

func newNameMatcher(query string) *nameMatcher {
	caser := cases.Fold()
	return &nameMatcher{
		caser:  caser,
		needle: caser.String(query),
	}
}

func (m *nameMatcher) Match(name string) bool {
	return strings.Contains(m.caser.String(name), m.needle)
}

// FilterDoctors derives the visible list: search, then mode, then specialty,
// then sort. All predicates must hold. The input slice is not modified.
func FilterDoctors(doctors []entity.Doctor, query string, filter entity.DoctorFilter) []entity.Doctor {
	var matcher *nameMatcher
	if query != "" {
		matcher = newNameMatcher(query)
	}

	result := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if matcher != nil && !matcher.Match(doctor.Name) {
			continue
		}
		if !filter.Mode.Allows(doctor) {
			continue
		}
		if len(filter.Specialties) > 0 && !doctor.HasAnySpecialty(filter.Specialties) {
			continue
		}
		result = append(result, doctor)
	}

	switch filter.Sort {
	case entity.SortFees:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return a.Fees.Cmp(b.Fees)
		})
	case entity.SortExperience:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return cmp.Compare(b.Experience, a.Experience)
		})
	}

	return result
}

// SuggestDoctors returns up to MaxSuggestions doctors, in stored order, whose
// name contains query. A blank query yields no suggestions.
func SuggestDoctors(doctors []entity.Doctor, query string) []entity.Doctor {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	matcher := newNameMatcher(query)
	suggestions := make([]entity.Doctor, 0, MaxSuggestions)
	for _, doctor := range doctors {
		if !matcher.Match(doctor.Name) {
			continue
		}
		suggestions = append(suggestions, doctor)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}
	return suggestions
}
