package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/cases/internal/errors"
	"github.com/umalmyha/cases/internal/validation"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

const unexpectedErrMsg = "Something went wrong!"

// Response is envelope every endpoint replies with
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type violations struct {
	Errors []validation.Violation `json:"errors"`
}

func success(c echo.Context, code int, data any) error {
	return c.JSON(code, &Response{Status: statusSuccess, Data: data})
}

// internalErr keeps domain errors as is and hides anything else behind generic message
func internalErr(msg string, err error) error {
	var pldErr *validation.PayloadError
	var bizErr *apperrors.BusinessErr
	var notFoundErr *apperrors.EntryNotFoundErr
	var httpErr *echo.HTTPError

	if errors.As(err, &pldErr) || errors.As(err, &bizErr) || errors.As(err, &notFoundErr) || errors.As(err, &httpErr) {
		return err
	}
	return echo.NewHTTPError(http.StatusInternalServerError, msg).SetInternal(err)
}

// HTTPErrorHandler translates errors returned by handlers to envelope with matching status code
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, res := errorResponse(err)

	if code >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method":     c.Request().Method,
			"uri":        c.Request().RequestURI,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).WithError(errorCause(err)).Error("request failed")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, res)
	}

	if writeErr != nil {
		logrus.WithError(writeErr).Error("failed to write error response")
	}
}

func errorResponse(err error) (int, *Response) {
	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return http.StatusBadRequest, &Response{
			Status:  statusFail,
			Message: pldErr.Error(),
			Data:    &violations{Errors: pldErr.Violations()},
		}
	}

	var bizErr *apperrors.BusinessErr
	if errors.As(err, &bizErr) {
		return http.StatusBadRequest, &Response{Status: statusFail, Message: bizErr.Error()}
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, &Response{Status: statusFail, Message: notFoundErr.Error()}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status := statusFail
		if httpErr.Code >= http.StatusInternalServerError {
			status = statusError
		}
		return httpErr.Code, &Response{Status: status, Message: fmt.Sprint(httpErr.Message)}
	}

	return http.StatusInternalServerError, &Response{Status: statusError, Message: unexpectedErrMsg}
}

func errorCause(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Internal != nil {
		return httpErr.Internal
	}
	return err
}
