package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctor-finder/internal/converter"
	"doctor-finder/internal/delivery/dto"
	"doctor-finder/internal/usecase"
	"doctor-finder/pkg/response"
	"doctor-finder/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

var errInvalidQuery = errors.New("invalid query parameters")

// decodeDoctorQuery decodes and validates the directory state carried in the URL.
// Validation failures are returned as per-parameter messages.
func decodeDoctorQuery(r *http.Request, v *validator.CustomValidator) (*dto.DoctorQuery, map[string]string, error) {
	query, err := converter.ValuesToDoctorQuery(r.URL.Query())
	if err != nil {
		return nil, nil, errInvalidQuery
	}

	if err := v.Validate(query); err != nil {
		return nil, v.FormatValidationErrors(err), nil
	}

	return query, nil, nil
}

// parseDoctorQuery is decodeDoctorQuery for the JSON API. It writes the error
// response itself and reports whether the caller may continue.
func parseDoctorQuery(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator) (*dto.DoctorQuery, bool) {
	query, fieldErrors, err := decodeDoctorQuery(r, v)
	if err != nil {
		response.BadRequest(w, "Invalid query parameters")
		return nil, false
	}
	if fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return nil, false
	}

	return query, true
}

func writeDirectoryError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrInvalidMode:
		response.BadRequest(w, "Invalid mode, use video or clinic")
	case usecase.ErrInvalidSort:
		response.BadRequest(w, "Invalid sort, use fees or experience")
	case usecase.ErrUnknownEvent:
		response.BadRequest(w, "Unknown event type")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	query, ok := parseDoctorQuery(w, r, h.validator)
	if !ok {
		return
	}

	view, err := h.directoryUsecase.Search(r.Context(), query)
	if err != nil {
		writeDirectoryError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", view)
}

func (h *DoctorHandler) SuggestDoctors(w http.ResponseWriter, r *http.Request) {
	query, ok := parseDoctorQuery(w, r, h.validator)
	if !ok {
		return
	}

	suggestions, err := h.directoryUsecase.Suggest(r.Context(), query.Search)
	if err != nil {
		response.InternalServerError(w, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) ApplyViewEvent(w http.ResponseWriter, r *http.Request) {
	query, ok := parseDoctorQuery(w, r, h.validator)
	if !ok {
		return
	}

	var req dto.ViewEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	view, err := h.directoryUsecase.ApplyEvent(r.Context(), query, &req)
	if err != nil {
		writeDirectoryError(w, err, "Failed to apply event")
		return
	}

	response.Success(w, http.StatusOK, "Event applied successfully", view)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", h.directoryUsecase.GetSpecialties(r.Context()))
}
