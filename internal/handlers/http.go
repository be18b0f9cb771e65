package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/cases/internal/model"
	"github.com/umalmyha/cases/internal/service"
)

type newCase struct {
	CaseNumber   string            `json:"caseNumber"`
	Subject      string            `json:"subject"`
	Description  string            `json:"description"`
	Department   string            `json:"department"`
	Status       model.Status      `json:"status"`
	ContactName  string            `json:"contactName"`
	BusinessName string            `json:"businessName"`
	Coid         string            `json:"coid"`
	Mid          string            `json:"mid"`
	CustomFields map[string]string `json:"customFields"`
}

type updateCase struct {
	CaseNumber   *string           `json:"caseNumber"`
	Subject      *string           `json:"subject"`
	Description  *string           `json:"description"`
	Department   *string           `json:"department"`
	Status       *model.Status     `json:"status"`
	ContactName  *string           `json:"contactName"`
	BusinessName *string           `json:"businessName"`
	Coid         *string           `json:"coid"`
	Mid          *string           `json:"mid"`
	CustomFields map[string]string `json:"customFields"`
}

type newCustomField struct {
	Key      string          `json:"id"`
	Label    string          `json:"label"`
	Type     model.FieldType `json:"type"`
	Required bool            `json:"required"`
}

type caseData struct {
	Case *model.Case `json:"case"`
}

type fieldData struct {
	Field *model.CustomField `json:"field"`
}

type fieldsData struct {
	Fields []*model.CustomField `json:"fields"`
}

// CaseHTTPHandler is http handler for cases endpoint
type CaseHTTPHandler struct {
	caseSvc service.CaseService
}

// NewCaseHTTPHandler builds new CaseHTTPHandler
func NewCaseHTTPHandler(caseSvc service.CaseService) *CaseHTTPHandler {
	return &CaseHTTPHandler{caseSvc: caseSvc}
}

// GetAll lists cases
// @Summary     List cases
// @Description Returns page of cases, newest first, optionally filtered and searched
// @Tags        cases
// @Produce     json
// @Param       page         query    int    false "Page number" default(1)
// @Param       limit        query    int    false "Page size" default(10)
// @Param       search       query    string false "Full-text search"
// @Param       businessName query    string false "Business name"
// @Param       department   query    string false "Department"
// @Param       coid         query    string false "COID"
// @Param       mid          query    string false "MID"
// @Success     200          {object} Response{data=model.CasePage}
// @Failure     500          {object} Response
// @Router      /api/cases [get]
func (h *CaseHTTPHandler) GetAll(c echo.Context) error {
	f := model.CaseFilter{
		Search:       c.QueryParam("search"),
		BusinessName: c.QueryParam("businessName"),
		Department:   c.QueryParam("department"),
		Coid:         c.QueryParam("coid"),
		Mid:          c.QueryParam("mid"),
		Page:         intQueryParam(c, "page", model.DefaultPage),
		Limit:        intQueryParam(c, "limit", model.DefaultLimit),
	}

	page, err := h.caseSvc.FindAll(c.Request().Context(), f)
	if err != nil {
		return internalErr("Error fetching cases", err)
	}
	return success(c, http.StatusOK, page)
}

// Get gets case
// @Summary     Get single case by id
// @Description Returns single case with provided id
// @Tags        cases
// @Produce     json
// @Param       id  path     string true "Case id"
// @Success     200 {object} Response{data=caseData}
// @Failure     404 {object} Response
// @Failure     500 {object} Response
// @Router      /api/cases/{id} [get]
func (h *CaseHTTPHandler) Get(c echo.Context) error {
	cs, err := h.caseSvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return internalErr("Error fetching case", err)
	}
	return success(c, http.StatusOK, &caseData{Case: cs})
}

// Post creates new case
// @Summary     New case
// @Description Creates new case, every missing required field is reported
// @Tags        cases
// @Accept      json
// @Produce     json
// @Param       newCase body     newCase true "Data for new case"
// @Success     201     {object} Response{data=caseData}
// @Failure     400     {object} Response
// @Failure     500     {object} Response
// @Router      /api/cases [post]
func (h *CaseHTTPHandler) Post(c echo.Context) error {
	var nc newCase
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cs, err := h.caseSvc.Create(c.Request().Context(), &model.Case{
		CaseNumber:   nc.CaseNumber,
		Subject:      nc.Subject,
		Description:  nc.Description,
		Department:   nc.Department,
		Status:       nc.Status,
		ContactName:  nc.ContactName,
		BusinessName: nc.BusinessName,
		Coid:         nc.Coid,
		Mid:          nc.Mid,
		CustomFields: nc.CustomFields,
	})
	if err != nil {
		return internalErr("Error creating case", err)
	}
	return success(c, http.StatusCreated, &caseData{Case: cs})
}

// Put updates case
// @Summary     Update case
// @Description Replaces provided fields of existing case and returns updated case
// @Tags        cases
// @Accept      json
// @Produce     json
// @Param       id         path     string     true "Case id"
// @Param       updateCase body     updateCase true "Fields to replace"
// @Success     200        {object} Response{data=caseData}
// @Failure     400        {object} Response
// @Failure     404        {object} Response
// @Failure     500        {object} Response
// @Router      /api/cases/{id} [put]
func (h *CaseHTTPHandler) Put(c echo.Context) error {
	var uc updateCase
	if err := c.Bind(&uc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cs, err := h.caseSvc.Update(c.Request().Context(), c.Param("id"), &model.CasePatch{
		CaseNumber:   uc.CaseNumber,
		Subject:      uc.Subject,
		Description:  uc.Description,
		Department:   uc.Department,
		Status:       uc.Status,
		ContactName:  uc.ContactName,
		BusinessName: uc.BusinessName,
		Coid:         uc.Coid,
		Mid:          uc.Mid,
		CustomFields: uc.CustomFields,
	})
	if err != nil {
		return internalErr("Error updating case", err)
	}
	return success(c, http.StatusOK, &caseData{Case: cs})
}

// DeleteByID deletes case
// @Summary     Delete case by id
// @Description Deletes case with provided id
// @Tags        cases
// @Param       id  path string true "Case id"
// @Success     204 "Successful status code"
// @Failure     404 {object} Response
// @Failure     500 {object} Response
// @Router      /api/cases/{id} [delete]
func (h *CaseHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.caseSvc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return internalErr("Error deleting case", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CustomFieldHTTPHandler is http handler for custom fields endpoint
type CustomFieldHTTPHandler struct {
	fieldSvc service.CustomFieldService
}

// NewCustomFieldHTTPHandler builds new CustomFieldHTTPHandler
func NewCustomFieldHTTPHandler(fieldSvc service.CustomFieldService) *CustomFieldHTTPHandler {
	return &CustomFieldHTTPHandler{fieldSvc: fieldSvc}
}

// GetAll lists custom fields
// @Summary     List custom fields
// @Description Returns all custom field definitions
// @Tags        custom-fields
// @Produce     json
// @Success     200 {object} Response{data=fieldsData}
// @Failure     500 {object} Response
// @Router      /api/cases/custom-fields [get]
func (h *CustomFieldHTTPHandler) GetAll(c echo.Context) error {
	fields, err := h.fieldSvc.FindAll(c.Request().Context())
	if err != nil {
		return internalErr("Error fetching custom fields", err)
	}
	return success(c, http.StatusOK, &fieldsData{Fields: fields})
}

// Post creates custom field
// @Summary     New custom field
// @Description Creates custom field definition
// @Tags        custom-fields
// @Accept      json
// @Produce     json
// @Param       newCustomField body     newCustomField true "Custom field definition"
// @Success     201            {object} Response{data=fieldData}
// @Failure     400            {object} Response
// @Failure     500            {object} Response
// @Router      /api/cases/custom-fields [post]
func (h *CustomFieldHTTPHandler) Post(c echo.Context) error {
	var nf newCustomField
	if err := c.Bind(&nf); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	f, err := h.fieldSvc.Create(c.Request().Context(), &model.CustomField{
		Key:      nf.Key,
		Label:    nf.Label,
		Type:     nf.Type,
		Required: nf.Required,
	})
	if err != nil {
		return internalErr("Error creating custom field", err)
	}
	return success(c, http.StatusCreated, &fieldData{Field: f})
}

// DeleteByID deletes custom field
// @Summary     Delete custom field by id
// @Description Deletes custom field definition, values stored on cases are kept
// @Tags        custom-fields
// @Param       id  path string true "Custom field store id"
// @Success     204 "Successful status code"
// @Failure     404 {object} Response
// @Failure     500 {object} Response
// @Router      /api/cases/custom-fields/{id} [delete]
func (h *CustomFieldHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.fieldSvc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return internalErr("Error deleting custom field", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Root reports that api is up
// @Summary     API status
// @Tags        status
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      / [get]
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "API is running..."})
}

func intQueryParam(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}
