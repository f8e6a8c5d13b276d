package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"roundup-savings/internal/dto"
	"roundup-savings/internal/repositories"
	"roundup-savings/internal/services"
	"roundup-savings/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = newTestEcho()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

const validRegisterBody = `{"email":"jane@example.com","username":"jane_doe","password":"Secret123"}`

func (s *AuthHandlerSuite) TestRegister_Success() {
	s.authService.EXPECT().
		Register(gomock.Any(), &dto.RegisterRequest{Email: "jane@example.com", Username: "jane_doe", Password: "Secret123"}).
		Return(&dto.TokenResponse{AccessToken: "tok", TokenType: dto.TokenTypeBearer, ExpiresIn: 3600}, nil)

	c, rec := newJSONContext(s.e, http.MethodPost, "/auth/register", validRegisterBody, uuid.Nil)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"access_token":"tok"`)
	s.Contains(rec.Body.String(), `"token_type":"bearer"`)
}

func (s *AuthHandlerSuite) TestRegister_ValidationErrorReturned() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/auth/register", `{"email":"not-an-email","username":"jd","password":"x"}`, uuid.Nil)

	err := s.handler.Register(c)

	var verrs validator.ValidationErrors
	s.Require().ErrorAs(err, &verrs)
}

func (s *AuthHandlerSuite) TestRegister_MalformedBody() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/auth/register", `{"email":`, uuid.Nil)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", decodeErrorCode(rec))
}

func (s *AuthHandlerSuite) TestRegister_ServiceErrors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"email taken", repositories.ErrEmailAlreadyExists, http.StatusBadRequest, "USER_002"},
		{"username taken", repositories.ErrUsernameAlreadyExists, http.StatusBadRequest, "USER_003"},
		{"weak password", fmt.Errorf("password validation failed: %w", services.ErrPasswordNoNumber), http.StatusBadRequest, "VALIDATION_005"},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.authService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := newJSONContext(s.e, http.MethodPost, "/auth/register", validRegisterBody, uuid.Nil)

			s.Require().NoError(s.handler.Register(c))
			s.Equal(tt.wantStatus, rec.Code)
			s.Equal(tt.wantCode, decodeErrorCode(rec))
		})
	}
}

func (s *AuthHandlerSuite) TestRegister_WeakPasswordDetail() {
	s.authService.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("password validation failed: %w", services.ErrPasswordNoUppercase))

	c, rec := newJSONContext(s.e, http.MethodPost, "/auth/register", validRegisterBody, uuid.Nil)

	s.Require().NoError(s.handler.Register(c))
	s.Contains(rec.Body.String(), services.ErrPasswordNoUppercase.Error())
}

func (s *AuthHandlerSuite) TestLogin() {
	s.Run("success", func() {
		s.authService.EXPECT().
			Login(gomock.Any(), &dto.LoginRequest{Username: "jane_doe", Password: "Secret123"}).
			Return(&dto.TokenResponse{AccessToken: "tok", TokenType: dto.TokenTypeBearer, ExpiresIn: 3600}, nil)

		c, rec := newJSONContext(s.e, http.MethodPost, "/auth/login", `{"username":"jane_doe","password":"Secret123"}`, uuid.Nil)

		s.Require().NoError(s.handler.Login(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"expires_in":3600`)
	})

	s.Run("invalid credentials", func() {
		s.authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidCredentials)

		c, rec := newJSONContext(s.e, http.MethodPost, "/auth/login", `{"username":"jane_doe","password":"wrong"}`, uuid.Nil)

		s.Require().NoError(s.handler.Login(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_001", decodeErrorCode(rec))
	})

	s.Run("disabled account", func() {
		s.authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, services.ErrAccountDisabled)

		c, rec := newJSONContext(s.e, http.MethodPost, "/auth/login", `{"username":"jane_doe","password":"Secret123"}`, uuid.Nil)

		s.Require().NoError(s.handler.Login(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_005", decodeErrorCode(rec))
	})

	s.Run("missing password", func() {
		c, _ := newJSONContext(s.e, http.MethodPost, "/auth/login", `{"username":"jane_doe"}`, uuid.Nil)

		s.Error(s.handler.Login(c))
	})
}
