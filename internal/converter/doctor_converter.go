package converter

import (
	"doctor-finder/internal/delivery/dto"
	"doctor-finder/internal/domain/entity"
)

const feeCurrencySymbol = "₹"

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	specialties := doctor.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return &dto.DoctorResponse{
		ID:            doctor.ID,
		Name:          doctor.Name,
		Specialties:   specialties,
		VideoConsult:  doctor.VideoConsult,
		InClinic:      doctor.InClinic,
		Fees:          doctor.Fees.InexactFloat64(),
		FeesDisplay:   feeCurrencySymbol + " " + doctor.Fees.String(),
		Experience:    doctor.Experience,
		Qualification: doctor.Qualification,
		ClinicName:    doctor.ClinicName,
		Location:      doctor.Location,
		Image:         doctor.Image,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorsToSuggestions keeps only what the autocomplete dropdown shows.
func DoctorsToSuggestions(doctors []entity.Doctor) []dto.SuggestionResponse {
	suggestions := make([]dto.SuggestionResponse, len(doctors))
	for i, doctor := range doctors {
		suggestions[i] = dto.SuggestionResponse{
			ID:    doctor.ID,
			Name:  doctor.Name,
			Image: doctor.Image,
		}
		if len(doctor.Specialties) > 0 {
			suggestions[i].PrimarySpecialty = doctor.Specialties[0]
		}
	}
	return suggestions
}

func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i, s := range specialties {
		responses[i] = dto.SpecialtyResponse{
			ID:   s.ID,
			Name: s.Display,
		}
	}
	return responses
}
