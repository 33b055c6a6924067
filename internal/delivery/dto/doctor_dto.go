package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// DoctorQuery is the URL form of the directory state. The schema tags define
// the query parameter names; omitempty keeps cleared values out of the URL.
type DoctorQuery struct {
	Mode      string   `schema:"mode,omitempty" json:"mode" validate:"omitempty,oneof=video clinic"`
	Sort      string   `schema:"sort,omitempty" json:"sort" validate:"omitempty,oneof=fees experience"`
	Search    string   `schema:"search,omitempty" json:"search" validate:"max=200"`
	Specialty []string `schema:"specialty,omitempty" json:"specialties" validate:"max=50,dive,required,max=100"`
}

type ViewEventRequest struct {
	Type  string `json:"type" validate:"required,oneof=set_query select_suggestion toggle_specialty set_mode set_sort clear_filters"`
	Value string `json:"value" validate:"required_if=Type toggle_specialty,required_if=Type select_suggestion,max=200"`
}

// Response DTOs

type DoctorResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Specialties   []string  `json:"specialties"`
	VideoConsult  bool      `json:"video_consult"`
	InClinic      bool      `json:"in_clinic"`
	Fees          float64   `json:"fees"`
	FeesDisplay   string    `json:"fees_display"`
	Experience    float64   `json:"experience"`
	Qualification string    `json:"qualification"`
	ClinicName    string    `json:"clinic_name"`
	Location      string    `json:"location"`
	Image         string    `json:"image,omitempty"`
}

type SuggestionResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	PrimarySpecialty string    `json:"primary_specialty,omitempty"`
	Image            string    `json:"image,omitempty"`
}

type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type DoctorViewResponse struct {
	State       DoctorQuery          `json:"state"`
	Query       string               `json:"query"`
	Doctors     []DoctorResponse     `json:"doctors"`
	Suggestions []SuggestionResponse `json:"suggestions"`
	Total       int                  `json:"total"`
}

type SpecialtyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
