package converter

import (
	"net/url"

	"doctor-finder/internal/delivery/dto"
	"doctor-finder/internal/domain/entity"

	"github.com/gorilla/schema"
)

var (
	queryDecoder = newQueryDecoder()
	queryEncoder = schema.NewEncoder()
)

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// ValuesToDoctorQuery reads mode, sort, search and the repeated specialty
// parameter. Other parameters are ignored.
func ValuesToDoctorQuery(values url.Values) (*dto.DoctorQuery, error) {
	var query dto.DoctorQuery
	if err := queryDecoder.Decode(&query, values); err != nil {
		return nil, err
	}
	return &query, nil
}

// DoctorQueryToValues rebuilds the full parameter set. Empty values are left out.
func DoctorQueryToValues(query *dto.DoctorQuery) (url.Values, error) {
	values := url.Values{}
	if err := queryEncoder.Encode(query, values); err != nil {
		return nil, err
	}
	return values, nil
}

// DoctorQueryToFilter maps a decoded query onto the domain filter.
func DoctorQueryToFilter(query *dto.DoctorQuery) (entity.DoctorFilter, error) {
	mode, err := entity.ParseMode(query.Mode)
	if err != nil {
		return entity.DoctorFilter{}, err
	}
	sortKey, err := entity.ParseSortKey(query.Sort)
	if err != nil {
		return entity.DoctorFilter{}, err
	}
	return entity.DoctorFilter{
		Mode:        mode,
		Specialties: entity.NewSpecialtySet(query.Specialty...),
		Sort:        sortKey,
	}, nil
}

// FilterToDoctorQuery is the inverse of DoctorQueryToFilter. Specialties are
// written in lexical order so equal states produce equal URLs.
func FilterToDoctorQuery(search string, filter entity.DoctorFilter) *dto.DoctorQuery {
	return &dto.DoctorQuery{
		Mode:      string(filter.Mode),
		Sort:      string(filter.Sort),
		Search:    search,
		Specialty: filter.Specialties.Names(),
	}
}
