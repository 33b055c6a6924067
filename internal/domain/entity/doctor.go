package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents a doctor record loaded from the remote feed.
// Records are never modified after they are stored.
type Doctor struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Specialties   []string        `json:"specialties"`
	VideoConsult  bool            `json:"videoConsult"`
	InClinic      bool            `json:"inClinic"`
	Fees          decimal.Decimal `json:"fees"`
	Experience    float64         `json:"experience"`
	Qualification string          `json:"qualification"`
	ClinicName    string          `json:"clinicName"`
	Location      string          `json:"location"`
	Image         string          `json:"image,omitempty"`
}

// HasAnySpecialty reports whether at least one of the doctor's specialties is in set.
func (d Doctor) HasAnySpecialty(set SpecialtySet) bool {
	for _, s := range d.Specialties {
		if set.Has(s) {
			return true
		}
	}
	return false
}
