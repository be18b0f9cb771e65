package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/cases/internal/errors"
	"github.com/umalmyha/cases/internal/model"
	svcMocks "github.com/umalmyha/cases/internal/service/mocks"
	"github.com/umalmyha/cases/internal/validation"
)

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type handlersTestSuite struct {
	suite.Suite
	app          *echo.Echo
	caseSvcMock  *svcMocks.CaseService
	fieldSvcMock *svcMocks.CustomFieldService
	caseHandler  *CaseHTTPHandler
	fieldHandler *CustomFieldHTTPHandler
	stored       *model.Case
}

func (s *handlersTestSuite) SetupSuite() {
	s.app = echo.New()
	s.app.HTTPErrorHandler = HTTPErrorHandler

	createdAt := time.Date(2022, time.August, 1, 10, 0, 0, 0, time.UTC)
	s.stored = &model.Case{
		ID:           "62e9b2a0c1d2e3f4a5b6c7d8",
		CaseNumber:   "CS-1001",
		Subject:      "Payout delayed",
		Description:  "Merchant reports payout was not received",
		Department:   "Payments",
		Status:       model.StatusOpen,
		CustomFields: map[string]string{},
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func (s *handlersTestSuite) SetupTest() {
	t := s.T()
	s.caseSvcMock = svcMocks.NewCaseService(t)
	s.fieldSvcMock = svcMocks.NewCustomFieldService(t)
	s.caseHandler = NewCaseHTTPHandler(s.caseSvcMock)
	s.fieldHandler = NewCustomFieldHTTPHandler(s.fieldSvcMock)
}

func (s *handlersTestSuite) TestCaseHTTPHandlerGetAll() {
	require := s.Require()

	t := s.T()
	t.Log("invalid page falls back to default, filters are passed")
	{
		expected := model.CaseFilter{Department: "Payroll", Search: "late payout", Page: 1, Limit: 5}
		page := model.NewCasePage([]*model.Case{s.stored}, 11, expected)
		s.caseSvcMock.On("FindAll", mock.Anything, expected).Return(page, nil).Once()

		c, rec := s.echoGetContext("/api/cases?page=abc&limit=5&department=Payroll&search=late+payout")
		err := s.caseHandler.GetAll(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code)

		res := s.decode(rec)
		require.Equal("success", res.Status)

		var data model.CasePage
		require.NoError(json.Unmarshal(res.Data, &data), "failed to parse page")
		require.Equal(int64(11), data.Total)
		require.Equal(int64(3), data.Pages)
		require.Len(data.Cases, 1)
	}

	t.Log("store failure is reported with operation message")
	{
		s.caseSvcMock.On("FindAll", mock.Anything, mock.AnythingOfType("model.CaseFilter")).Return(nil, errors.New("connection refused")).Once()

		c, _ := s.echoGetContext("/api/cases")
		err := s.caseHandler.GetAll(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(err, &httpErr, "error must be echo error")
		require.Equal(http.StatusInternalServerError, httpErr.Code)
		require.Equal("Error fetching cases", httpErr.Message)
		require.EqualError(httpErr.Internal, "connection refused")
	}
}

func (s *handlersTestSuite) TestCaseHTTPHandlerGet() {
	require := s.Require()

	t := s.T()
	t.Log("case is wrapped into data")
	{
		s.caseSvcMock.On("FindByID", mock.Anything, s.stored.ID).Return(s.stored, nil).Once()

		c, rec := s.echoParamContext(http.MethodGet, "/api/cases/"+s.stored.ID, s.stored.ID, "")
		err := s.caseHandler.Get(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code)

		var data caseData
		require.NoError(json.Unmarshal(s.decode(rec).Data, &data), "failed to parse case")
		require.Equal(s.stored, data.Case)
	}

	t.Log("not found error is kept")
	{
		s.caseSvcMock.On("FindByID", mock.Anything, "unknown").Return(nil, apperrors.NewEntryNotFoundErr("Case not found")).Once()

		c, _ := s.echoParamContext(http.MethodGet, "/api/cases/unknown", "unknown", "")
		err := s.caseHandler.Get(c)
		require.IsType(&apperrors.EntryNotFoundErr{}, err, "error must be not found error")
	}
}

func (s *handlersTestSuite) TestCaseHTTPHandlerPost() {
	require := s.Require()

	t := s.T()
	t.Log("post with wrong payload")
	{
		c, _ := s.echoPostContext("/api/cases", `{"caseNumber":"CS-`)
		err := s.caseHandler.Post(c)
		require.Error(err, "wrong payload has been provided but no error raised")
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
		require.Equal(http.StatusBadRequest, err.(*echo.HTTPError).Code)
	}

	t.Log("validation error is kept")
	{
		v, err := validation.New(validation.Policy{})
		require.NoError(err, "failed to build validator")
		pldErr := v.Validate(&model.Case{Status: model.StatusOpen})

		s.caseSvcMock.On("Create", mock.Anything, mock.AnythingOfType("*model.Case")).Return(nil, pldErr).Once()

		c, _ := s.echoPostContext("/api/cases", `{"caseNumber":"CS-1002"}`)
		err = s.caseHandler.Post(c)
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("successful post")
	{
		isNew := mock.MatchedBy(func(c *model.Case) bool {
			return c.CaseNumber == "CS-1001" && c.Department == "Payments" && c.CustomFields["priority"] == "high"
		})
		s.caseSvcMock.On("Create", mock.Anything, isNew).Return(s.stored, nil).Once()

		payload := `{"caseNumber":"CS-1001","subject":"Payout delayed","description":"Merchant reports payout was not received",` +
			`"department":"Payments","customFields":{"priority":"high"}}`
		c, rec := s.echoPostContext("/api/cases", payload)
		err := s.caseHandler.Post(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusCreated, rec.Code, "response status code must be Created")
	}
}

func (s *handlersTestSuite) TestCaseHTTPHandlerPut() {
	require := s.Require()

	t := s.T()
	t.Log("put with wrong payload")
	{
		c, _ := s.echoParamContext(http.MethodPut, "/api/cases/"+s.stored.ID, s.stored.ID, `{"subject":`)
		err := s.caseHandler.Put(c)
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
	}

	t.Log("only submitted fields are passed")
	{
		isPatch := mock.MatchedBy(func(p *model.CasePatch) bool {
			return p.Subject != nil && *p.Subject == "Payout received" &&
				p.Status != nil && *p.Status == model.StatusClosed &&
				p.CaseNumber == nil && p.Description == nil && p.CustomFields == nil
		})

		updated := *s.stored
		updated.Subject = "Payout received"
		updated.Status = model.StatusClosed
		s.caseSvcMock.On("Update", mock.Anything, s.stored.ID, isPatch).Return(&updated, nil).Once()

		c, rec := s.echoParamContext(http.MethodPut, "/api/cases/"+s.stored.ID, s.stored.ID, `{"subject":"Payout received","status":"closed"}`)
		err := s.caseHandler.Put(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code)

		var data caseData
		require.NoError(json.Unmarshal(s.decode(rec).Data, &data), "failed to parse case")
		require.Equal("Payout received", data.Case.Subject)
	}
}

func (s *handlersTestSuite) TestCaseHTTPHandlerDelete() {
	require := s.Require()

	t := s.T()
	t.Log("successful delete")
	{
		s.caseSvcMock.On("DeleteByID", mock.Anything, s.stored.ID).Return(nil).Once()

		c, rec := s.echoParamContext(http.MethodDelete, "/api/cases/"+s.stored.ID, s.stored.ID, "")
		err := s.caseHandler.DeleteByID(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusNoContent, rec.Code, "response status code must be No Content")
	}

	t.Log("delete unknown case")
	{
		s.caseSvcMock.On("DeleteByID", mock.Anything, "unknown").Return(apperrors.NewEntryNotFoundErr("Case not found")).Once()

		c, _ := s.echoParamContext(http.MethodDelete, "/api/cases/unknown", "unknown", "")
		err := s.caseHandler.DeleteByID(c)
		require.IsType(&apperrors.EntryNotFoundErr{}, err, "error must be not found error")
	}
}

func (s *handlersTestSuite) TestCustomFieldHTTPHandler() {
	require := s.Require()
	field := &model.CustomField{ID: "62e9b2a0c1d2e3f4a5b6c701", Key: "priority", Label: "Priority", Type: model.FieldTypeText}

	t := s.T()
	t.Log("list custom fields")
	{
		s.fieldSvcMock.On("FindAll", mock.Anything).Return([]*model.CustomField{field}, nil).Once()

		c, rec := s.echoGetContext("/api/cases/custom-fields")
		err := s.fieldHandler.GetAll(c)
		require.NoError(err, "no error must be raised")

		var data fieldsData
		require.NoError(json.Unmarshal(s.decode(rec).Data, &data), "failed to parse fields")
		require.Equal([]*model.CustomField{field}, data.Fields)
	}

	t.Log("create custom field")
	{
		isNew := mock.MatchedBy(func(f *model.CustomField) bool {
			return f.Key == "priority" && f.Label == "Priority" && f.Type == "" && !f.Required
		})
		s.fieldSvcMock.On("Create", mock.Anything, isNew).Return(field, nil).Once()

		c, rec := s.echoPostContext("/api/cases/custom-fields", `{"id":"priority","label":"Priority"}`)
		err := s.fieldHandler.Post(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusCreated, rec.Code)

		var data fieldData
		require.NoError(json.Unmarshal(s.decode(rec).Data, &data), "failed to parse field")
		require.Equal(field, data.Field)
	}

	t.Log("delete custom field")
	{
		s.fieldSvcMock.On("DeleteByID", mock.Anything, field.ID).Return(nil).Once()

		c, rec := s.echoParamContext(http.MethodDelete, "/api/cases/custom-fields/"+field.ID, field.ID, "")
		err := s.fieldHandler.DeleteByID(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusNoContent, rec.Code)
	}
}

func (s *handlersTestSuite) TestHTTPErrorHandler() {
	require := s.Require()

	v, err := validation.New(validation.Policy{Departments: []string{"Payments"}})
	require.NoError(err, "failed to build validator")

	t := s.T()
	t.Log("payload error lists violations")
	{
		pldErr := v.Validate(&model.Case{CaseNumber: "CS-1", Department: "Payments", Status: model.StatusOpen})

		c, rec := s.echoGetContext("/api/cases")
		HTTPErrorHandler(pldErr, c)
		require.Equal(http.StatusBadRequest, rec.Code)

		res := s.decode(rec)
		require.Equal("fail", res.Status)
		require.Equal("Missing required fields: subject, description", res.Message)

		var data struct {
			Errors []validation.Violation `json:"errors"`
		}
		require.NoError(json.Unmarshal(res.Data, &data), "failed to parse violations")
		require.Len(data.Errors, 2)
		require.Equal("subject", data.Errors[0].Field)
	}

	t.Log("conflict is bad request")
	{
		c, rec := s.echoGetContext("/api/cases")
		HTTPErrorHandler(apperrors.NewBusinessErr("caseNumber", "Case number already exists"), c)
		require.Equal(http.StatusBadRequest, rec.Code)
		require.Equal("Case number already exists", s.decode(rec).Message)
	}

	t.Log("not found")
	{
		c, rec := s.echoGetContext("/api/cases/1")
		HTTPErrorHandler(apperrors.NewEntryNotFoundErr("Case not found"), c)
		require.Equal(http.StatusNotFound, rec.Code)

		res := s.decode(rec)
		require.Equal("fail", res.Status)
		require.Equal("Case not found", res.Message)
	}

	t.Log("internal cause is hidden")
	{
		c, rec := s.echoGetContext("/api/cases")
		HTTPErrorHandler(internalErr("Error fetching cases", errors.New("socket closed")), c)
		require.Equal(http.StatusInternalServerError, rec.Code)

		res := s.decode(rec)
		require.Equal("error", res.Status)
		require.Equal("Error fetching cases", res.Message)
		require.NotContains(rec.Body.String(), "socket closed")
	}

	t.Log("unknown error gets generic message")
	{
		c, rec := s.echoGetContext("/api/cases")
		HTTPErrorHandler(context.DeadlineExceeded, c)
		require.Equal(http.StatusInternalServerError, rec.Code)
		require.Equal("Something went wrong!", s.decode(rec).Message)
	}

	t.Log("unmatched route")
	{
		c, rec := s.echoGetContext("/api/unknown")
		HTTPErrorHandler(echo.ErrNotFound, c)
		require.Equal(http.StatusNotFound, rec.Code)
		require.Equal("fail", s.decode(rec).Status)
	}
}

func (s *handlersTestSuite) TestRoot() {
	c, rec := s.echoGetContext("/")
	err := Root(c)
	s.Require().NoError(err, "no error must be raised")
	s.Require().JSONEq(`{"message":"API is running..."}`, rec.Body.String())
}

func (s *handlersTestSuite) decode(rec *httptest.ResponseRecorder) envelope {
	var res envelope
	err := json.NewDecoder(rec.Body).Decode(&res)
	s.Require().NoError(err, "failed to parse response envelope")
	return res
}

func (s *handlersTestSuite) echoPostContext(target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *handlersTestSuite) echoGetContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *handlersTestSuite) echoParamContext(method, target, id, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.app.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

// start handlers test suite
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
