package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	domainUser "seismic-catalog/internal/domain/user"
	ucUser "seismic-catalog/internal/usecase/user"
)

type UserHandler struct {
	uc     *ucUser.Usecase
	logger *logrus.Entry
}

func NewUserHandler(uc *ucUser.Usecase, logger *logrus.Logger) *UserHandler {
	entry := logrus.WithField("component", "http.user")
	if logger != nil {
		entry = logger.WithField("component", "http.user")
	}
	return &UserHandler{uc: uc, logger: entry}
}

type signupReq struct {
	Name     string `json:"name"      validate:"required,max=255"`
	CPFNo    string `json:"cpf_no"    validate:"required,max=64"`
	Password string `json:"password"  validate:"required,min=6,bytesmax=72"`
	UserType string `json:"user_type" validate:"required,role"`
}

type loginReq struct {
	CPFNo    string `json:"cpf_no"   validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	// blank after trimming counts as missing
	req.Name = strings.TrimSpace(req.Name)
	req.CPFNo = strings.TrimSpace(req.CPFNo)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Signup(c.Request().Context(), ucUser.SignupInput{
		Name:     req.Name,
		CPFNo:    req.CPFNo,
		Password: req.Password,
		UserType: domainUser.Role(req.UserType),
	})
	if err != nil {
		return writeUserError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    dto,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	req.CPFNo = strings.TrimSpace(req.CPFNo)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Login(c.Request().Context(), ucUser.LoginInput{CPFNo: req.CPFNo, Password: req.Password})
	if err != nil {
		return writeUserError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto)
}
