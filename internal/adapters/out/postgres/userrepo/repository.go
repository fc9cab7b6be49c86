package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/errs"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a user to the database. Not part of the UserRepository port:
// it exists for provisioning and test seeding.
func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllRiders retrieves every user holding the rider role, sorted by name.
func (r *GormUserRepository) GetAllRiders(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "role = ?", user.RoleRider.String()).Error; err != nil {
		return nil, err
	}

	riders := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		rider, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, rider)
	}

	return riders, nil
}
