package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/cases/internal/cache"
	apperrors "github.com/umalmyha/cases/internal/errors"
	"github.com/umalmyha/cases/internal/model"
	"github.com/umalmyha/cases/internal/repository"
	"github.com/umalmyha/cases/pkg/db/transactor"
)

const (
	caseNotFoundMsg       = "Case not found"
	caseNumberConflictMsg = "Case number already exists"
)

// CaseService is case use cases
type CaseService interface {
	FindAll(context.Context, model.CaseFilter) (*model.CasePage, error)
	FindByID(context.Context, string) (*model.Case, error)
	Create(context.Context, *model.Case) (*model.Case, error)
	Update(context.Context, string, *model.CasePatch) (*model.Case, error)
	DeleteByID(context.Context, string) error
}

// CasePolicy holds owner decisions on case listing
type CasePolicy struct {
	// MaxListLimit caps page size, zero means unbounded
	MaxListLimit int
}

type caseService struct {
	caseRepo  repository.CaseRepository
	caseCache cache.CaseCache
	trx       transactor.Transactor
	validator Validator
	policy    CasePolicy
}

// NewCaseService builds CaseService
func NewCaseService(
	caseRepo repository.CaseRepository,
	caseCache cache.CaseCache,
	trx transactor.Transactor,
	validator Validator,
	policy CasePolicy,
) CaseService {
	return &caseService{
		caseRepo:  caseRepo,
		caseCache: caseCache,
		trx:       trx,
		validator: validator,
		policy:    policy,
	}
}

func (s *caseService) FindAll(ctx context.Context, f model.CaseFilter) (*model.CasePage, error) {
	if f.Page < 1 {
		f.Page = model.DefaultPage
	}

	if f.Limit < 1 {
		f.Limit = model.DefaultLimit
	}

	if s.policy.MaxListLimit > 0 && f.Limit > s.policy.MaxListLimit {
		f.Limit = s.policy.MaxListLimit
	}

	cases, err := s.caseRepo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to find cases - %w", err)
	}

	total, err := s.caseRepo.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases - %w", err)
	}

	return model.NewCasePage(cases, total, f), nil
}

func (s *caseService) FindByID(ctx context.Context, id string) (*model.Case, error) {
	c, err := s.caseCache.FindByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("id", id).Warn("failed to read case from cache")
	}

	if c != nil {
		return c, nil
	}

	c, err = s.caseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find case %s - %w", id, err)
	}

	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr(caseNotFoundMsg)
	}

	if err := s.caseCache.Cache(ctx, c); err != nil {
		logrus.WithError(err).WithField("id", id).Warn("failed to cache case")
	}
	return c, nil
}

func (s *caseService) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	c.Normalize()
	if err := s.validator.Validate(c); err != nil {
		return nil, err
	}

	if err := s.caseRepo.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.NewBusinessErr("caseNumber", caseNumberConflictMsg)
		}
		return nil, fmt.Errorf("failed to create case %s - %w", c.CaseNumber, err)
	}

	logrus.WithFields(logrus.Fields{"id": c.ID, "caseNumber": c.CaseNumber}).Info("case created")
	return c, nil
}

func (s *caseService) Update(ctx context.Context, id string, patch *model.CasePatch) (*model.Case, error) {
	var updated *model.Case

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.caseRepo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to find case %s - %w", id, err)
		}

		if existing == nil {
			return apperrors.NewEntryNotFoundErr(caseNotFoundMsg)
		}

		merged := patch.Apply(*existing)
		merged.Normalize()
		if err := s.validator.Validate(&merged); err != nil {
			return err
		}

		updated, err = s.caseRepo.Update(ctx, &merged)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return apperrors.NewBusinessErr("caseNumber", caseNumberConflictMsg)
			}
			return fmt.Errorf("failed to update case %s - %w", id, err)
		}

		if updated == nil {
			return apperrors.NewEntryNotFoundErr(caseNotFoundMsg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.caseCache.EvictByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to evict case %s from cache - %w", id, err)
	}
	return updated, nil
}

func (s *caseService) DeleteByID(ctx context.Context, id string) error {
	if err := s.caseCache.EvictByID(ctx, id); err != nil {
		return fmt.Errorf("failed to evict case %s from cache - %w", id, err)
	}

	deleted, err := s.caseRepo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete case %s - %w", id, err)
	}

	if !deleted {
		return apperrors.NewEntryNotFoundErr(caseNotFoundMsg)
	}

	logrus.WithField("id", id).Info("case deleted")
	return nil
}
