package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
	fixed   time.Time
	restore func() time.Time
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
	s.fixed = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.restore = nowFunc
	nowFunc = func() time.Time { return s.fixed }
}

func (s *ResponseTestSuite) TearDownTest() {
	nowFunc = s.restore
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthInvalidCredentials, s.traceID)

	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("Invalid credentials", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(s.fixed, response.Error.Timestamp)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(RoundupInvalidAmount, s.traceID,
		WithDetails("amount: must be positive"),
		WithMessage("bad amount"),
	)

	s.Equal("ROUNDUP_003", response.Error.Code)
	s.Equal("bad amount", response.Error.Message)
	s.Equal([]string{"amount: must be positive"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{"email": "is required"}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"email: is required"}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	inner := errors.New("connection reset")

	response, err := WrapSystemError(inner, s.traceID)

	s.Equal(inner, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "connection reset")
}

func (s *ResponseTestSuite) TestToJSON() {
	data, err := NewErrorResponse(UserNotFound, s.traceID).ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]any
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("USER_001", decoded["error"]["code"])
	s.Equal("2024-03-01T12:00:00Z", decoded["error"]["timestamp"])
	s.NotContains(decoded["error"], "details")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{RoundupInvalidBoundary, http.StatusBadRequest},
		{UserEmailExists, http.StatusBadRequest},
		{BankAccountAlreadyLinked, http.StatusBadRequest},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthAccountDisabled, http.StatusUnauthorized},
		{UserNotFound, http.StatusNotFound},
		{RoundupNotFound, http.StatusNotFound},
		{UpstreamUnavailable, http.StatusInternalServerError},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemRouteNotFound, http.StatusNotFound},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientServerClassification() {
	s.True(NewErrorResponse(UserNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(UserNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(UpstreamUnavailable, s.traceID).IsServerError())
	s.Equal("[USER_001] User not found (trace: "+s.traceID+")", NewErrorResponse(UserNotFound, s.traceID).String())
}
