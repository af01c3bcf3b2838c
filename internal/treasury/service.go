package treasury

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/db/models"
	pkgerrors "github.com/questforge/questledger-backend/pkg/errors"
	"gorm.io/gorm"
)

type houseRepository interface {
	FindHouseByUserID(ctx context.Context, userID uuid.UUID) (*models.House, error)
}

// Service exposes the read side of house treasuries. Credits happen inside
// the sale transaction and go through the repository directly.
type Service interface {
	GetTreasury(ctx context.Context, userID uuid.UUID) (*HouseDTO, error)
}

type service struct {
	repo houseRepository
}

// NewService builds a treasury service with the required repository.
func NewService(repo houseRepository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "house repo is required")
	}
	return &service{repo: repo}, nil
}

// GetTreasury returns the caller's house balance.
func (s *service) GetTreasury(ctx context.Context, userID uuid.UUID) (*HouseDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	record, err := s.repo.FindHouseByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "No house found for user")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load house")
	}
	dto := ToHouseDTO(record)
	return &dto, nil
}

// ToHouseDTO maps the persisted house onto the API shape.
func ToHouseDTO(record *models.House) HouseDTO {
	return HouseDTO{
		ID:        record.ID,
		Name:      record.Name,
		Gold:      record.Gold,
		UpdatedAt: record.UpdatedAt,
	}
}
