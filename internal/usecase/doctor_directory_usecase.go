package usecase

import (
	"context"
	"errors"

	"doctor-finder/internal/converter"
	"doctor-finder/internal/delivery/dto"
	"doctor-finder/internal/domain/entity"
	"doctor-finder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	EventSetQuery         = "set_query"
	EventSelectSuggestion = "select_suggestion"
	EventToggleSpecialty  = "toggle_specialty"
	EventSetMode          = "set_mode"
	EventSetSort          = "set_sort"
	EventClearFilters     = "clear_filters"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidMode    = errors.New("invalid mode, use video or clinic")
	ErrInvalidSort    = errors.New("invalid sort, use fees or experience")
	ErrUnknownEvent   = errors.New("unknown view event")
)

type DoctorDirectoryUsecase interface {
	Search(ctx context.Context, query *dto.DoctorQuery) (*dto.DoctorViewResponse, error)
	Suggest(ctx context.Context, search string) (*dto.SuggestionListResponse, error)
	ApplyEvent(ctx context.Context, query *dto.DoctorQuery, event *dto.ViewEventRequest) (*dto.DoctorViewResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetSpecialties(ctx context.Context) []dto.SpecialtyResponse
	// LoadState seeds a DirectoryState from query for callers that render it themselves.
	LoadState(ctx context.Context, query *dto.DoctorQuery) (*DirectoryState, error)
}

type doctorDirectoryUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorDirectoryUsecase) LoadState(ctx context.Context, query *dto.DoctorQuery) (*DirectoryState, error) {
	filter, err := converter.DoctorQueryToFilter(query)
	if err != nil {
		return nil, mapFilterError(err)
	}

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return NewDirectoryState(u.log, doctors, query.Search, filter), nil
}

func (u *doctorDirectoryUsecase) Search(ctx context.Context, query *dto.DoctorQuery) (*dto.DoctorViewResponse, error) {
	state, err := u.LoadState(ctx, query)
	if err != nil {
		return nil, err
	}
	return stateToResponse(state), nil
}

func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, search string) (*dto.SuggestionListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.SuggestionListResponse{
		Suggestions: converter.DoctorsToSuggestions(SuggestDoctors(doctors, search)),
	}, nil
}

// ApplyEvent replays a single UI event on top of the state encoded in query
// and returns the resulting view together with its canonical query string.
func (u *doctorDirectoryUsecase) ApplyEvent(ctx context.Context, query *dto.DoctorQuery, event *dto.ViewEventRequest) (*dto.DoctorViewResponse, error) {
	state, err := u.LoadState(ctx, query)
	if err != nil {
		return nil, err
	}

	switch event.Type {
	case EventSetQuery:
		state.SetQuery(event.Value)
	case EventSelectSuggestion:
		state.SelectSuggestion(event.Value)
	case EventToggleSpecialty:
		state.ToggleSpecialty(event.Value)
	case EventSetMode:
		mode, err := entity.ParseMode(event.Value)
		if err != nil {
			return nil, ErrInvalidMode
		}
		state.SetMode(mode)
	case EventSetSort:
		sortKey, err := entity.ParseSortKey(event.Value)
		if err != nil {
			return nil, ErrInvalidSort
		}
		state.SetSort(sortKey)
	case EventClearFilters:
		state.ClearFilters()
	default:
		return nil, ErrUnknownEvent
	}

	return stateToResponse(state), nil
}

func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorDirectoryUsecase) GetSpecialties(ctx context.Context) []dto.SpecialtyResponse {
	return converter.SpecialtiesToResponses(entity.SpecialtyCatalog)
}

func stateToResponse(state *DirectoryState) *dto.DoctorViewResponse {
	view := state.View()
	return &dto.DoctorViewResponse{
		State:       *converter.FilterToDoctorQuery(state.Query(), state.Filter()),
		Query:       state.EncodedQuery(),
		Doctors:     converter.DoctorsToResponses(view),
		Suggestions: converter.DoctorsToSuggestions(state.Suggestions()),
		Total:       len(view),
	}
}

func mapFilterError(err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidMode):
		return ErrInvalidMode
	case errors.Is(err, entity.ErrInvalidSortKey):
		return ErrInvalidSort
	}
	return err
}
