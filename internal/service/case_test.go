package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	cacheMocks "github.com/umalmyha/cases/internal/cache/mocks"
	apperrors "github.com/umalmyha/cases/internal/errors"
	"github.com/umalmyha/cases/internal/model"
	"github.com/umalmyha/cases/internal/repository"
	rpsMocks "github.com/umalmyha/cases/internal/repository/mocks"
	"github.com/umalmyha/cases/internal/validation"
	"github.com/umalmyha/cases/pkg/db/transactor"
)

type caseTestData struct {
	ctx       context.Context
	stored    *model.Case
	validator Validator
}

type caseServiceTestSuite struct {
	suite.Suite
	caseSvc       CaseService
	caseRpsMock   *rpsMocks.CaseRepository
	caseCacheMock *cacheMocks.CaseCache
	testData      *caseTestData
}

func (s *caseServiceTestSuite) SetupSuite() {
	v, err := validation.New(validation.Policy{Departments: []string{"Payments", "Payroll", "QBO"}})
	s.Require().NoError(err, "failed to build validator")

	createdAt := time.Date(2022, time.August, 1, 10, 0, 0, 0, time.UTC)
	s.testData = &caseTestData{
		ctx:       context.Background(),
		validator: v,
		stored: &model.Case{
			ID:           "62e9b2a0c1d2e3f4a5b6c7d8",
			CaseNumber:   "CS-1001",
			Subject:      "Payout delayed",
			Description:  "Merchant reports payout was not received",
			Department:   "Payments",
			Status:       model.StatusOpen,
			BusinessName: "Doe Bakery",
			CustomFields: map[string]string{"priority": "high"},
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt,
		},
	}
}

func (s *caseServiceTestSuite) SetupTest() {
	t := s.T()
	s.caseRpsMock = rpsMocks.NewCaseRepository(t)
	s.caseCacheMock = cacheMocks.NewCaseCache(t)
	s.caseSvc = s.newService(CasePolicy{})
}

func (s *caseServiceTestSuite) newService(p CasePolicy) CaseService {
	return NewCaseService(s.caseRpsMock, s.caseCacheMock, transactor.NewNopTransactor(), s.testData.validator, p)
}

func (s *caseServiceTestSuite) storedCopy() *model.Case {
	c := *s.testData.stored
	c.CustomFields = map[string]string{"priority": "high"}
	return &c
}

func (s *caseServiceTestSuite) TestFindAllDefaults() {
	ctx := s.testData.ctx
	expected := model.CaseFilter{Page: model.DefaultPage, Limit: model.DefaultLimit}

	s.caseRpsMock.On("Find", ctx, expected).Return([]*model.Case{s.storedCopy()}, nil).Once()
	s.caseRpsMock.On("Count", ctx, expected).Return(int64(25), nil).Once()

	s.T().Log("missing page and limit fall back to defaults")
	{
		page, err := s.caseSvc.FindAll(ctx, model.CaseFilter{})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(1, page.Page)
		s.Assert().Equal(int64(25), page.Total)
		s.Assert().Equal(int64(3), page.Pages)
		s.Assert().Len(page.Cases, 1)
	}
}

func (s *caseServiceTestSuite) TestFindAllPassesFilters() {
	ctx := s.testData.ctx
	f := model.CaseFilter{Search: "payout", Department: "Payments", Mid: "456", Page: 2, Limit: 10}

	s.caseRpsMock.On("Find", ctx, f).Return(nil, nil).Once()
	s.caseRpsMock.On("Count", ctx, f).Return(int64(0), nil).Once()

	s.T().Log("filters reach repository as is and empty result is listed")
	{
		page, err := s.caseSvc.FindAll(ctx, f)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotNil(page.Cases, "cases must be empty array")
		s.Assert().Empty(page.Cases)
		s.Assert().Equal(int64(0), page.Pages)
	}
}

func (s *caseServiceTestSuite) TestFindAllLimitClamped() {
	ctx := s.testData.ctx
	svc := s.newService(CasePolicy{MaxListLimit: 50})
	expected := model.CaseFilter{Page: 1, Limit: 50}

	s.caseRpsMock.On("Find", ctx, expected).Return([]*model.Case{}, nil).Once()
	s.caseRpsMock.On("Count", ctx, expected).Return(int64(0), nil).Once()

	s.T().Log("limit above configured maximum is clamped")
	{
		_, err := svc.FindAll(ctx, model.CaseFilter{Page: 1, Limit: 1000})
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *caseServiceTestSuite) TestFindAllFailed() {
	ctx := s.testData.ctx

	s.caseRpsMock.On("Find", ctx, mock.AnythingOfType("model.CaseFilter")).Return(nil, errors.New("connection refused")).Once()

	s.T().Log("store failure is raised and count is skipped")
	{
		_, err := s.caseSvc.FindAll(ctx, model.CaseFilter{})
		s.Assert().Error(err, "store failed - error must be raised up")
		s.caseRpsMock.AssertNotCalled(s.T(), "Count", ctx, mock.Anything)
	}
}

func (s *caseServiceTestSuite) TestFindByIDFromCache() {
	ctx := s.testData.ctx
	c := s.storedCopy()

	s.caseCacheMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()

	s.T().Log("case must be found in cache")
	{
		found, err := s.caseSvc.FindByID(ctx, c.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(c, found)
		s.caseRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, c.ID)
	}
}

func (s *caseServiceTestSuite) TestFindByIDCached() {
	ctx := s.testData.ctx
	c := s.storedCopy()

	s.caseCacheMock.On("FindByID", ctx, c.ID).Return(nil, nil).Once()
	s.caseRpsMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()
	s.caseCacheMock.On("Cache", ctx, c).Return(nil).Once()

	s.T().Log("case is not in cache, found in store and cached")
	{
		found, err := s.caseSvc.FindByID(ctx, c.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotNil(found, "case must be found")
	}
}

func (s *caseServiceTestSuite) TestFindByIDCacheUnavailable() {
	ctx := s.testData.ctx
	c := s.storedCopy()

	s.caseCacheMock.On("FindByID", ctx, c.ID).Return(nil, errors.New("cache err")).Once()
	s.caseRpsMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()
	s.caseCacheMock.On("Cache", ctx, c).Return(errors.New("cache err")).Once()

	s.T().Log("cache failures don't break reads")
	{
		found, err := s.caseSvc.FindByID(ctx, c.ID)
		s.Assert().NoError(err, "cache failed, but store is available - no error must be raised")
		s.Assert().Equal(c, found)
	}
}

func (s *caseServiceTestSuite) TestFindByIDNotFound() {
	ctx := s.testData.ctx
	id := "62e9b2a0c1d2e3f4a5b6c7ff"

	s.caseCacheMock.On("FindByID", ctx, id).Return(nil, nil).Once()
	s.caseRpsMock.On("FindByID", ctx, id).Return(nil, nil).Once()

	s.T().Log("case is missing in cache and in store")
	{
		c, err := s.caseSvc.FindByID(ctx, id)
		s.Assert().Nil(c, "no case must be present but it was found")

		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "error must be not found error")
		s.Assert().EqualError(err, "Case not found")
		s.caseCacheMock.AssertNotCalled(s.T(), "Cache", ctx, mock.Anything)
	}
}

func (s *caseServiceTestSuite) TestCreateSuccessfully() {
	ctx := s.testData.ctx
	c := &model.Case{
		CaseNumber:  "  CS-2002 ",
		Subject:     "Payroll not run",
		Description: "Payroll for July was not processed",
		Department:  "Payroll",
	}

	s.caseRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Case")).Return(nil).Once()

	s.T().Log("case is normalized and created")
	{
		created, err := s.caseSvc.Create(ctx, c)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal("CS-2002", created.CaseNumber, "case number must be trimmed")
		s.Assert().Equal(model.StatusOpen, created.Status, "status must default to open")
		s.Assert().Equal(map[string]string{}, created.CustomFields, "custom fields must default to empty map")
	}
}

func (s *caseServiceTestSuite) TestCreateMissingFields() {
	ctx := s.testData.ctx
	c := &model.Case{CaseNumber: "CS-2003", Department: "Payroll"}

	s.T().Log("every missing field is reported and store is untouched")
	{
		_, err := s.caseSvc.Create(ctx, c)

		var pldErr *validation.PayloadError
		s.Assert().ErrorAs(err, &pldErr, "error must be payload error")
		s.Assert().EqualError(err, "Missing required fields: subject, description")
		s.caseRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.Anything)
	}
}

func (s *caseServiceTestSuite) TestCreateDuplicate() {
	ctx := s.testData.ctx
	c := s.storedCopy()
	c.ID = ""

	s.caseRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Case")).Return(repository.ErrDuplicateKey).Once()

	s.T().Log("duplicate case number is a conflict")
	{
		_, err := s.caseSvc.Create(ctx, c)

		var bizErr *apperrors.BusinessErr
		s.Assert().ErrorAs(err, &bizErr, "error must be business error")
		s.Assert().Equal("caseNumber", bizErr.Target())
		s.Assert().EqualError(err, "Case number already exists")
	}
}

func (s *caseServiceTestSuite) TestUpdateNotFound() {
	ctx := s.testData.ctx
	id := "62e9b2a0c1d2e3f4a5b6c7ff"
	subject := "New subject"

	s.caseRpsMock.On("FindByID", ctx, id).Return(nil, nil).Once()

	s.T().Log("unknown case can't be updated")
	{
		_, err := s.caseSvc.Update(ctx, id, &model.CasePatch{Subject: &subject})

		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "error must be not found error")
		s.caseRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.Anything)
		s.caseCacheMock.AssertNotCalled(s.T(), "EvictByID", ctx, id)
	}
}

func (s *caseServiceTestSuite) TestUpdateMergesFields() {
	ctx := s.testData.ctx
	existing := s.storedCopy()
	subject := "Payout received"
	closed := model.StatusClosed

	isMerged := mock.MatchedBy(func(c *model.Case) bool {
		return c.ID == existing.ID &&
			c.Subject == subject &&
			c.Status == model.StatusClosed &&
			c.CaseNumber == existing.CaseNumber &&
			c.Description == existing.Description &&
			c.BusinessName == existing.BusinessName &&
			c.CustomFields["priority"] == "high"
	})

	s.caseRpsMock.On("FindByID", ctx, existing.ID).Return(existing, nil).Once()
	s.caseRpsMock.On("Update", ctx, isMerged).Return(func(_ context.Context, c *model.Case) *model.Case {
		return c
	}, nil).Once()
	s.caseCacheMock.On("EvictByID", ctx, existing.ID).Return(nil).Once()

	s.T().Log("only submitted fields are changed and cache entry is evicted")
	{
		updated, err := s.caseSvc.Update(ctx, existing.ID, &model.CasePatch{Subject: &subject, Status: &closed})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(subject, updated.Subject)
		s.Assert().Equal(model.StatusClosed, updated.Status)
		s.Assert().Equal(existing.Description, updated.Description)
	}
}

func (s *caseServiceTestSuite) TestUpdateInvalid() {
	ctx := s.testData.ctx
	existing := s.storedCopy()
	department := "Marketing"
	empty := ""

	s.caseRpsMock.On("FindByID", ctx, existing.ID).Return(existing, nil).Once()

	s.T().Log("merged case is validated with creation rules")
	{
		_, err := s.caseSvc.Update(ctx, existing.ID, &model.CasePatch{Department: &department, Subject: &empty})

		var pldErr *validation.PayloadError
		s.Assert().ErrorAs(err, &pldErr, "error must be payload error")
		s.Assert().Len(pldErr.Violations(), 2)
		s.caseRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.Anything)
	}
}

func (s *caseServiceTestSuite) TestUpdateDuplicate() {
	ctx := s.testData.ctx
	existing := s.storedCopy()
	caseNumber := "CS-0001"

	s.caseRpsMock.On("FindByID", ctx, existing.ID).Return(existing, nil).Once()
	s.caseRpsMock.On("Update", ctx, mock.AnythingOfType("*model.Case")).Return(nil, repository.ErrDuplicateKey).Once()

	s.T().Log("case number taken by other case is a conflict")
	{
		_, err := s.caseSvc.Update(ctx, existing.ID, &model.CasePatch{CaseNumber: &caseNumber})

		var bizErr *apperrors.BusinessErr
		s.Assert().ErrorAs(err, &bizErr, "error must be business error")
	}
}

func (s *caseServiceTestSuite) TestDeleteByIDCacheFailed() {
	ctx := s.testData.ctx
	id := s.testData.stored.ID

	s.caseCacheMock.On("EvictByID", ctx, id).Return(errors.New("cache err")).Once()

	s.T().Log("evict case from cache failed")
	{
		err := s.caseSvc.DeleteByID(ctx, id)
		s.Assert().Error(err, "cache raised error - error must be raised up")
		s.caseRpsMock.AssertNotCalled(s.T(), "DeleteByID", ctx, id)
	}
}

func (s *caseServiceTestSuite) TestDeleteByIDNotFound() {
	ctx := s.testData.ctx
	id := "62e9b2a0c1d2e3f4a5b6c7ff"

	s.caseCacheMock.On("EvictByID", ctx, id).Return(nil).Once()
	s.caseRpsMock.On("DeleteByID", ctx, id).Return(false, nil).Once()

	s.T().Log("unknown case can't be deleted")
	{
		err := s.caseSvc.DeleteByID(ctx, id)

		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "error must be not found error")
	}
}

func (s *caseServiceTestSuite) TestDeleteByIDSuccessfully() {
	ctx := s.testData.ctx
	id := s.testData.stored.ID

	s.caseCacheMock.On("EvictByID", ctx, id).Return(nil).Once()
	s.caseRpsMock.On("DeleteByID", ctx, id).Return(true, nil).Once()

	s.T().Log("deleted successfully")
	{
		err := s.caseSvc.DeleteByID(ctx, id)
		s.Assert().NoError(err, "no error must be raised")
	}
}

// start case service test suite
func TestCaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(caseServiceTestSuite))
}
