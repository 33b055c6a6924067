package usecase

import (
	"net/url"

	"doctor-finder/internal/converter"
	"doctor-finder/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// DirectoryState holds everything one directory page shows. Every event
// method mutates the inputs and then calls update, which recomputes the
// derived list and the URL parameters together; nothing else writes them.
type DirectoryState struct {
	log *logrus.Logger

	doctors     []entity.Doctor
	query       string
	filter      entity.DoctorFilter
	suggestions []entity.Doctor

	view   []entity.Doctor
	params url.Values
}

// NewDirectoryState seeds the state, typically from the request URL.
func NewDirectoryState(log *logrus.Logger, doctors []entity.Doctor, query string, filter entity.DoctorFilter) *DirectoryState {
	s := &DirectoryState{
		log:     log,
		doctors: doctors,
		query:   query,
		filter:  filter.Clone(),
	}
	s.update()
	return s
}

func (s *DirectoryState) update() {
	s.view = FilterDoctors(s.doctors, s.query, s.filter)

	params, err := converter.DoctorQueryToValues(converter.FilterToDoctorQuery(s.query, s.filter))
	if err != nil {
		s.log.Warnf("Failed to encode doctor query: %+v", err)
		params = url.Values{}
	}
	s.params = params
}

// SetQuery handles a keystroke in the search box.
func (s *DirectoryState) SetQuery(query string) {
	s.query = query
	s.suggestions = SuggestDoctors(s.doctors, query)
	s.update()
}

// SelectSuggestion searches for the chosen doctor's full name.
func (s *DirectoryState) SelectSuggestion(name string) {
	s.query = name
	s.suggestions = nil
	s.update()
}

func (s *DirectoryState) ToggleSpecialty(name string) {
	s.filter.Specialties.Toggle(name)
	s.update()
}

func (s *DirectoryState) SetMode(mode entity.Mode) {
	s.filter.Mode = mode
	s.update()
}

func (s *DirectoryState) SetSort(key entity.SortKey) {
	s.filter.Sort = key
	s.update()
}

// ClearFilters resets filters, query and suggestions.
func (s *DirectoryState) ClearFilters() {
	s.filter = entity.DoctorFilter{Specialties: entity.NewSpecialtySet()}
	s.query = ""
	s.suggestions = nil
	s.update()
}

func (s *DirectoryState) Query() string {
	return s.query
}

func (s *DirectoryState) Filter() entity.DoctorFilter {
	return s.filter.Clone()
}

func (s *DirectoryState) View() []entity.Doctor {
	return s.view
}

func (s *DirectoryState) Suggestions() []entity.Doctor {
	return s.suggestions
}

// Params returns a copy of the URL parameters for the current state.
func (s *DirectoryState) Params() url.Values {
	params := make(url.Values, len(s.params))
	for k, v := range s.params {
		params[k] = append([]string(nil), v...)
	}
	return params
}

// EncodedQuery is the canonical query string, without the leading "?".
func (s *DirectoryState) EncodedQuery() string {
	return s.params.Encode()
}
