package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"doctor-finder/config"
	"doctor-finder/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// feedDoctor mirrors one element of the remote feed. The feed may carry
// extra fields (including a non-UUID id) which are ignored.
type feedDoctor struct {
	Name          string          `json:"name"`
	Specialties   []string        `json:"specialties"`
	VideoConsult  bool            `json:"videoConsult"`
	InClinic      bool            `json:"inClinic"`
	Fees          decimal.Decimal `json:"fees"`
	Experience    float64         `json:"experience"`
	Qualification string          `json:"qualification"`
	ClinicName    string          `json:"clinicName"`
	Location      string          `json:"location"`
	Image         string          `json:"image"`
}

type feedPayload struct {
	Doctors []feedDoctor `json:"doctors"`
}

// HTTPDoctorSource reads the doctor list from a static JSON endpoint.
type HTTPDoctorSource struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

func NewHTTPDoctorSource(cfg config.SourceConfig, log *logrus.Logger) *HTTPDoctorSource {
	return &HTTPDoctorSource{
		url: cfg.URL,
		log: log,
		// Zero timeout means the request is bounded only by ctx.
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchDoctors issues a single GET. A payload without a "doctors" field
// yields an empty list.
func (s *HTTPDoctorSource) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch doctors feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch doctors feed: unexpected status %d", resp.StatusCode)
	}

	var payload feedPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode doctors feed: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"url":      s.url,
		"records":  len(payload.Doctors),
		"duration": time.Since(start).String(),
	}).Debug("Doctors feed fetched")

	doctors := make([]entity.Doctor, len(payload.Doctors))
	for i, d := range payload.Doctors {
		doctors[i] = entity.Doctor{
			Name:          d.Name,
			Specialties:   d.Specialties,
			VideoConsult:  d.VideoConsult,
			InClinic:      d.InClinic,
			Fees:          d.Fees,
			Experience:    d.Experience,
			Qualification: d.Qualification,
			ClinicName:    d.ClinicName,
			Location:      d.Location,
			Image:         d.Image,
		}
	}
	return doctors, nil
}
