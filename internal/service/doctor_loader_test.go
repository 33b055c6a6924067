package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"doctor-finder/internal/domain/entity"
	"doctor-finder/internal/observability/metrics"
	"doctor-finder/internal/repository"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	doctors []entity.Doctor
	err     error
	calls   int
}

func (s *stubSource) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]entity.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDoctorLoader_StoresRecordsWithStableIDs(t *testing.T) {
	src := &stubSource{doctors: []entity.Doctor{{Name: "Ann"}, {Name: "Dan"}}}
	repo := repository.NewDoctorMemoryRepository()
	loader := NewDoctorLoader(src, repo, quietLogger(), metrics.NewDirectoryMetrics(prometheus.NewRegistry()))

	require.NoError(t, loader.Load(context.Background()))
	assert.Equal(t, 1, src.calls)

	first, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.NotEqual(t, uuid.Nil, first[0].ID)
	assert.NotEqual(t, first[0].ID, first[1].ID)

	require.NoError(t, loader.Load(context.Background()))
	second, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestDoctorLoader_FailureLeavesStoreEmpty(t *testing.T) {
	src := &stubSource{err: errors.New("connection refused")}
	repo := repository.NewDoctorMemoryRepository()
	loader := NewDoctorLoader(src, repo, quietLogger(), nil)

	err := loader.Load(context.Background())
	assert.Error(t, err)

	doctors, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doctors)
}
