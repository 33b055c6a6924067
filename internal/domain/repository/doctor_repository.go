package repository

import (
	"context"

	"doctor-finder/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	ReplaceAll(ctx context.Context, doctors []entity.Doctor) error
}
