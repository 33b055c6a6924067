package repository

import (
	"context"
	"sync"

	"doctor-finder/internal/domain/entity"
	domainRepo "doctor-finder/internal/domain/repository"

	"github.com/google/uuid"
)

type doctorMemoryRepository struct {
	mu      sync.RWMutex
	doctors []entity.Doctor
}

func NewDoctorMemoryRepository() domainRepo.DoctorRepository {
	return &doctorMemoryRepository{}
}

func (r *doctorMemoryRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctors := make([]entity.Doctor, len(r.doctors))
	copy(doctors, r.doctors)
	return doctors, nil
}

func (r *doctorMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.doctors {
		if r.doctors[i].ID == id {
			doctor := r.doctors[i]
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *doctorMemoryRepository) ReplaceAll(ctx context.Context, doctors []entity.Doctor) error {
	stored := make([]entity.Doctor, len(doctors))
	copy(stored, doctors)

	r.mu.Lock()
	r.doctors = stored
	r.mu.Unlock()
	return nil
}
