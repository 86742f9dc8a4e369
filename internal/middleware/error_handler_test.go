package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apierrors "fioapi/internal/errors"
	"fioapi/internal/handlers"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	var resp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// TestCustomHTTPErrorHandler_EchoNotFound tests that unknown routes get the bank's 404
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_EchoNotFound() {
	c, rec := s.newContext()

	CustomHTTPErrorHandler(echo.ErrNotFound, c)

	s.Equal(http.StatusNotFound, rec.Code)
	resp := s.decode(rec)
	s.Equal(string(apierrors.APIInvalidRequest), resp.Error.Code)
	s.Equal("test-trace-id", resp.Error.TraceID)
}

// TestCustomHTTPErrorHandler_AppError tests that API errors keep their status
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_AppError() {
	c, rec := s.newContext()

	CustomHTTPErrorHandler(apierrors.New(apierrors.APITooManyItems), c)

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal(string(apierrors.APITooManyItems), s.decode(rec).Error.Code)
}

// TestCustomHTTPErrorHandler_ValidationError tests that rejected parameters become 404
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_ValidationError() {
	c, rec := s.newContext()

	CustomHTTPErrorHandler(apierrors.NewInvalidParameter("id must be at least 0"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.APIInvalidRequest), s.decode(rec).Error.Code)
}

// TestCustomHTTPErrorHandler_GenericError tests handling of generic errors
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_GenericError() {
	c, rec := s.newContext()

	CustomHTTPErrorHandler(errors.New("generic error"), c)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	resp := s.decode(rec)
	s.Equal("SYSTEM_001", resp.Error.Code)
	s.NotContains(rec.Body.String(), "generic error")
}

// TestCustomHTTPErrorHandler_CommittedResponse tests that handler doesn't process committed responses
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_CommittedResponse() {
	c, rec := s.newContext()

	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

// TestMapHTTPStatusToErrorCode_AllStatuses tests error code mapping
func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode_AllStatuses() {
	testCases := []struct {
		status         int
		expectedStatus int
		expectedCode   string
	}{
		{http.StatusBadRequest, http.StatusNotFound, "API_001"},
		{http.StatusNotFound, http.StatusNotFound, "API_001"},
		{http.StatusMethodNotAllowed, http.StatusNotFound, "API_001"},
		{http.StatusTooManyRequests, http.StatusConflict, "API_002"},
		{http.StatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge, "API_003"},
		{http.StatusForbidden, http.StatusUnprocessableEntity, "API_004"},
		{http.StatusInternalServerError, http.StatusServiceUnavailable, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			c, rec := s.newContext()

			CustomHTTPErrorHandler(echo.NewHTTPError(tc.status), c)

			s.Equal(tc.expectedStatus, rec.Code)
			s.Contains(rec.Body.String(), tc.expectedCode)
		})
	}
}

// TestCustomHTTPErrorHandler_JSONFormat tests that response is valid JSON
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_JSONFormat() {
	c, rec := s.newContext()

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}
