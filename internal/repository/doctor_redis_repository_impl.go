package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"doctor-finder/internal/domain/entity"
	domainRepo "doctor-finder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultDoctorsKey = "doctors:snapshot"

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second
)

// doctorRedisRepository keeps the whole record list as one JSON snapshot,
// so replicas behind a load balancer serve the same fetched list.
type doctorRedisRepository struct {
	client *redis.Client
	key    string
}

func NewDoctorRedisRepository(client *redis.Client, key string) domainRepo.DoctorRepository {
	if key == "" {
		key = DefaultDoctorsKey
	}
	return &doctorRedisRepository{
		client: client,
		key:    key,
	}
}

func (r *doctorRedisRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []entity.Doctor{}, nil
		}
		return nil, fmt.Errorf("get doctors snapshot: %w", err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors snapshot: %w", err)
	}
	return doctors, nil
}

func (r *doctorRedisRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctors, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i], nil
		}
	}
	return nil, nil
}

func (r *doctorRedisRepository) ReplaceAll(ctx context.Context, doctors []entity.Doctor) error {
	if doctors == nil {
		doctors = []entity.Doctor{}
	}
	raw, err := json.Marshal(doctors)
	if err != nil {
		return fmt.Errorf("encode doctors snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("set doctors snapshot: %w", err)
	}
	return nil
}
