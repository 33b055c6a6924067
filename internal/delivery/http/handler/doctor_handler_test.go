package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctor-finder/internal/delivery/dto"
	"doctor-finder/internal/domain/entity"
	"doctor-finder/internal/repository"
	"doctor-finder/internal/usecase"
	"doctor-finder/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

var (
	annID = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	danID = uuid.MustParse("22222222-2222-4222-8222-222222222222")
)

func testDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:           annID,
			Name:         "Ann Thomas",
			Specialties:  []string{"Dentist"},
			VideoConsult: true,
			Fees:         decimal.NewFromInt(500),
			Experience:   3,
			ClinicName:   "Smile Dental",
			Location:     "Adyar, Chennai",
		},
		{
			ID:          danID,
			Name:        "Dan Kumar",
			Specialties: []string{"Cardiologist", "General Physician"},
			InClinic:    true,
			Fees:        decimal.NewFromInt(300),
			Experience:  5,
			Image:       "https://example.com/dan.png",
		},
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRouter(t *testing.T, doctors []entity.Doctor) *mux.Router {
	t.Helper()
	repo := repository.NewDoctorMemoryRepository()
	require.NoError(t, repo.ReplaceAll(context.Background(), doctors))

	log := quietLogger()
	uc := usecase.NewDoctorDirectoryUsecase(log, repo)
	v := validator.NewValidator()
	doctorHandler := NewDoctorHandler(uc, v)
	pageHandler := NewPageHandler(uc, v, log)

	router := mux.NewRouter()
	router.HandleFunc("/", pageHandler.Index).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/doctors", doctorHandler.SearchDoctors).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/doctors/suggestions", doctorHandler.SuggestDoctors).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/doctors/events", doctorHandler.ApplyViewEvent).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/doctors/{id}", doctorHandler.GetDoctor).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/specialties", doctorHandler.GetSpecialties).Methods(http.MethodGet)
	return router
}

func do(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, reader))

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestSearchDoctors(t *testing.T) {
	router := newTestRouter(t, testDoctors())

	rec, env := do(t, router, http.MethodGet, "/api/v1/doctors?sort=fees&search=AN", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view dto.DoctorViewResponse
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Equal(t, 2, view.Total)
	assert.Equal(t, "Dan Kumar", view.Doctors[0].Name)
	assert.Equal(t, float64(300), view.Doctors[0].Fees)
	assert.Equal(t, "search=AN&sort=fees", view.Query)
}

func TestSearchDoctors_RepeatedSpecialty(t *testing.T) {
	router := newTestRouter(t, testDoctors())

	rec, env := do(t, router, http.MethodGet, "/api/v1/doctors?specialty=ENT&specialty=Cardiologist&mode=clinic", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view dto.DoctorViewResponse
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Equal(t, 1, view.Total)
	assert.Equal(t, danID, view.Doctors[0].ID)
	assert.Equal(t, "mode=clinic&specialty=Cardiologist&specialty=ENT", view.Query)
}

func TestSearchDoctors_InvalidMode(t *testing.T) {
	router := newTestRouter(t, testDoctors())

	rec, env := do(t, router, http.MethodGet, "/api/v1/doctors?mode=phone", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, string(env.Error), "mode must be one of video clinic")
}

func TestSearchDoctors_EmptyStore(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, env := do(t, router, http.MethodGet, "/api/v1/doctors", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view dto.DoctorViewResponse
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, 0, view.Total)
	assert.Empty(t, view.Doctors)
}

func TestSuggestDoctors(t *testing.T) {
	router := newTestRouter(t, testDoctors())

	rec, env := do(t, router, http.MethodGet, "/api/v1/doctors/suggestions?search=dan", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.SuggestionListResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Suggestions, 1)
	assert.Equal(t, "Dan Kumar", list.Suggestions[0].Name)
	assert.Equal(t, "Cardiologist", list.Suggestions[0].PrimarySpecialty)
}

func TestApplyViewEvent(t *testing.T) {
	router := newTestRouter(t, testDoctors())

	rec, env := do(t, router, http.MethodPost, "/api/v1/doctors/events?mode=video", `{"type":"set_sort","value":"experience"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view dto.DoctorViewResponse
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "mode=video&sort=experience", view.Query)
	assert.Equal(t, 1, view.Total)
}

func TestApplyViewEvent_Errors(t *testing.T) {
	router := newTestRouter(t, testDoctors())

	rec, _ := do(t, router, http.MethodPost, "/api/v1/doctors/events", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := do(t, router, http.MethodPost, "/api/v1/doctors/events", `{"type":"book"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(env.Error), "type must be one of")

	rec, env = do(t, router, http.MethodPost, "/api/v1/doctors/events", `{"type":"toggle_specialty","value":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(env.Error), "value is required for this event type")

	rec, env = do(t, router, http.MethodPost, "/api/v1/doctors/events", `{"type":"select_suggestion"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(env.Error), "value is required for this event type")

	rec, env = do(t, router, http.MethodPost, "/api/v1/doctors/events", `{"type":"set_mode","value":"phone"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid mode, use video or clinic", env.Message)
}

func TestGetDoctor(t *testing.T) {
	router := newTestRouter(t, testDoctors())

	rec, env := do(t, router, http.MethodGet, "/api/v1/doctors/"+annID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doctor dto.DoctorResponse
	require.NoError(t, json.Unmarshal(env.Data, &doctor))
	assert.Equal(t, "Ann Thomas", doctor.Name)
	assert.Equal(t, "₹ 500", doctor.FeesDisplay)

	rec, _ = do(t, router, http.MethodGet, "/api/v1/doctors/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, router, http.MethodGet, "/api/v1/doctors/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSpecialties(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, env := do(t, router, http.MethodGet, "/api/v1/specialties", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var specialties []dto.SpecialtyResponse
	require.NoError(t, json.Unmarshal(env.Data, &specialties))
	assert.Len(t, specialties, len(entity.SpecialtyCatalog))
}
