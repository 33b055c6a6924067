package service

import (
	"context"
	"fmt"

	"doctor-finder/internal/domain/entity"
	"doctor-finder/internal/domain/repository"
	"doctor-finder/internal/observability/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DoctorSource provides the raw doctor list.
type DoctorSource interface {
	FetchDoctors(ctx context.Context) ([]entity.Doctor, error)
}

// doctorIDNamespace keeps generated ids stable across restarts for the same feed.
var doctorIDNamespace = uuid.MustParse("6f1c1f0e-5d0b-4b8e-9a57-2f4a3c9d7e10")

type DoctorLoader struct {
	source     DoctorSource
	doctorRepo repository.DoctorRepository
	log        *logrus.Logger
	metrics    *metrics.DirectoryMetrics
}

func NewDoctorLoader(
	source DoctorSource,
	doctorRepo repository.DoctorRepository,
	log *logrus.Logger,
	metrics *metrics.DirectoryMetrics,
) *DoctorLoader {
	return &DoctorLoader{
		source:     source,
		doctorRepo: doctorRepo,
		log:        log,
		metrics:    metrics,
	}
}

// Load fetches the feed once and stores it. On failure the error is logged
// and the store is left untouched (empty at startup). There is no retry.
func (l *DoctorLoader) Load(ctx context.Context) error {
	doctors, err := l.source.FetchDoctors(ctx)
	if err != nil {
		l.log.Errorf("Error fetching doctors: %+v", err)
		l.metrics.ObserveFeedLoad("error", 0)
		return err
	}

	for i := range doctors {
		doctors[i].ID = uuid.NewSHA1(doctorIDNamespace, []byte(fmt.Sprintf("%d:%s", i, doctors[i].Name)))
	}

	if err := l.doctorRepo.ReplaceAll(ctx, doctors); err != nil {
		l.log.Errorf("Failed to store doctors: %+v", err)
		l.metrics.ObserveFeedLoad("error", 0)
		return err
	}

	l.metrics.ObserveFeedLoad("success", len(doctors))
	l.log.Infof("Loaded %d doctors", len(doctors))
	return nil
}
