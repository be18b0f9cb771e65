package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/cases/internal/errors"
	"github.com/umalmyha/cases/internal/model"
	"github.com/umalmyha/cases/internal/repository"
)

const (
	customFieldNotFoundMsg = "Custom field not found"
	customFieldConflictMsg = "Custom field id already exists"
)

// CustomFieldService is custom field definitions use cases
type CustomFieldService interface {
	FindAll(context.Context) ([]*model.CustomField, error)
	Create(context.Context, *model.CustomField) (*model.CustomField, error)
	DeleteByID(context.Context, string) error
}

// CustomFieldPolicy holds owner decisions on custom field definitions
type CustomFieldPolicy struct {
	// UniqueKeys rejects definitions whose id is already in use
	UniqueKeys bool
}

type customFieldService struct {
	fieldRepo repository.CustomFieldRepository
	validator Validator
	policy    CustomFieldPolicy
}

// NewCustomFieldService builds CustomFieldService
func NewCustomFieldService(fieldRepo repository.CustomFieldRepository, validator Validator, policy CustomFieldPolicy) CustomFieldService {
	return &customFieldService{
		fieldRepo: fieldRepo,
		validator: validator,
		policy:    policy,
	}
}

func (s *customFieldService) FindAll(ctx context.Context) ([]*model.CustomField, error) {
	fields, err := s.fieldRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find custom fields - %w", err)
	}
	return fields, nil
}

func (s *customFieldService) Create(ctx context.Context, f *model.CustomField) (*model.CustomField, error) {
	f.Normalize()
	if err := s.validator.Validate(f); err != nil {
		return nil, err
	}

	if s.policy.UniqueKeys {
		exists, err := s.fieldRepo.ExistsByKey(ctx, f.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to check custom field %s - %w", f.Key, err)
		}

		if exists {
			return nil, apperrors.NewBusinessErr("id", customFieldConflictMsg)
		}
	}

	if err := s.fieldRepo.Create(ctx, f); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.NewBusinessErr("id", customFieldConflictMsg)
		}
		return nil, fmt.Errorf("failed to create custom field %s - %w", f.Key, err)
	}

	logrus.WithFields(logrus.Fields{"_id": f.ID, "id": f.Key}).Info("custom field created")
	return f, nil
}

func (s *customFieldService) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.fieldRepo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete custom field %s - %w", id, err)
	}

	if !deleted {
		return apperrors.NewEntryNotFoundErr(customFieldNotFoundMsg)
	}

	logrus.WithField("_id", id).Info("custom field deleted")
	return nil
}
