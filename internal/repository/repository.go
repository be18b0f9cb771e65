package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/cases/internal/model"
)

// ErrDuplicateKey is returned when write violates unique constraint of the store
var ErrDuplicateKey = errors.New("duplicate key")

// CaseRepository is persistence of cases.
// Find methods return nil entry without error when nothing matches.
type CaseRepository interface {
	FindByID(context.Context, string) (*model.Case, error)
	Find(context.Context, model.CaseFilter) ([]*model.Case, error)
	Count(context.Context, model.CaseFilter) (int64, error)
	Create(context.Context, *model.Case) error
	Update(context.Context, *model.Case) (*model.Case, error)
	DeleteByID(context.Context, string) (bool, error)
}

// CustomFieldRepository is persistence of custom field definitions
type CustomFieldRepository interface {
	FindAll(context.Context) ([]*model.CustomField, error)
	ExistsByKey(context.Context, string) (bool, error)
	Create(context.Context, *model.CustomField) error
	DeleteByID(context.Context, string) (bool, error)
}
