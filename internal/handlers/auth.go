package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"leadassign/internal/service"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=24"`
}

type login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type session struct {
	Token     string `json:"accessToken"`
	ExpiresAt int64  `json:"expiresAt"`
}

type newAdmin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthHTTPHandler is http handler for the auth endpoint
type AuthHTTPHandler struct {
	authSvc service.AuthService
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(authSvc service.AuthService) *AuthHTTPHandler {
	return &AuthHTTPHandler{authSvc: authSvc}
}

// Signup registers new admin account
// @Summary     Signup new admin
// @Description Registers new owner account based on provided credentials
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       signup body	    signup true "New admin data"
// @Success     201    {object} newAdmin
// @Failure     400    {object} echo.HTTPError
// @Failure     409    {object} echo.HTTPError
// @Router      /api/auth/signup [post]
func (h *AuthHTTPHandler) Signup(c echo.Context) error {
	var su signup
	if err := c.Bind(&su); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&su); err != nil {
		return err
	}

	admin, err := h.authSvc.Signup(c.Request().Context(), su.Email, su.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &newAdmin{ID: admin.ID, Email: admin.Email})
}

// Login verifies credentials and signs an access token
// @Summary     Login admin
// @Description Verifies provided credentials and signs access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login  body	    login true "Admin credentials"
// @Success     200    {object} session
// @Failure     400    {object} echo.HTTPError
// @Failure     401    {object} echo.HTTPError
// @Router      /api/auth/login [post]
func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	jwt, err := h.authSvc.Login(c.Request().Context(), lgn.Email, lgn.Password, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &session{Token: jwt.Signed, ExpiresAt: jwt.ExpiresAt})
}
