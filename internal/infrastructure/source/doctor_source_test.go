package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-finder/config"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource(t *testing.T, status int, body string) *HTTPDoctorSource {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	return newSourceWithLogger(t, status, body, log)
}

func newSourceWithLogger(t *testing.T, status int, body string, log *logrus.Logger) *HTTPDoctorSource {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewHTTPDoctorSource(config.SourceConfig{URL: srv.URL}, log)
}

func TestFetchDoctors_DecodesFeed(t *testing.T) {
	src := newSource(t, http.StatusOK, `{"doctors":[
		{"id":"111","name":"Ann","specialties":["Dentist"],"videoConsult":true,"inClinic":false,
		 "fees":500,"experience":3,"qualification":"BDS","clinicName":"Smile","location":"Chennai",
		 "image":"https://example.com/a.png"},
		{"name":"Dan","specialties":["ENT"],"inClinic":true,"fees":"300.50","experience":5}
	]}`)

	doctors, err := src.FetchDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 2)

	assert.Equal(t, "Ann", doctors[0].Name)
	assert.True(t, doctors[0].VideoConsult)
	assert.True(t, doctors[0].Fees.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "https://example.com/a.png", doctors[0].Image)
	assert.Equal(t, "Smile", doctors[0].ClinicName)

	assert.True(t, doctors[1].InClinic)
	assert.True(t, doctors[1].Fees.Equal(decimal.RequireFromString("300.50")))
	assert.Equal(t, float64(5), doctors[1].Experience)
}

func TestFetchDoctors_MissingFieldIsEmpty(t *testing.T) {
	src := newSource(t, http.StatusOK, `{}`)

	doctors, err := src.FetchDoctors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestFetchDoctors_Non2xx(t *testing.T) {
	src := newSource(t, http.StatusNotFound, `not found`)

	_, err := src.FetchDoctors(context.Background())
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestFetchDoctors_MalformedJSON(t *testing.T) {
	src := newSource(t, http.StatusOK, `{"doctors":[`)

	_, err := src.FetchDoctors(context.Background())
	assert.ErrorContains(t, err, "decode doctors feed")
}

func TestFetchDoctors_Unreachable(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	src := NewHTTPDoctorSource(config.SourceConfig{URL: "http://127.0.0.1:1/feed.json"}, log)

	_, err := src.FetchDoctors(context.Background())
	assert.Error(t, err)
}

func TestFetchDoctors_LogsThroughInjectedLogger(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	src := newSourceWithLogger(t, http.StatusOK, `{"doctors":[{"name":"Ann"},{"name":"Dan"}]}`, log)

	_, err := src.FetchDoctors(context.Background())
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Doctors feed fetched", entry.Message)
	assert.Equal(t, 2, entry.Data["records"])
}
