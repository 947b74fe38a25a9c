package handler

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/http/response"
	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	OperatorUC usecase.OperatorUsecase
	Logger     *slog.Logger
}

// AdminHandler manages operator accounts.
type AdminHandler struct {
	operatorUC usecase.OperatorUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		operatorUC: params.OperatorUC,
		logger:     params.Logger,
	}
}

// RegisterOperatorRequest represents the request body for creating an operator
type RegisterOperatorRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterOperator creates an account with the user role.
func (h *AdminHandler) RegisterOperator(c echo.Context) error {
	return h.register(c, entity.RoleUser, "Operator created successfully")
}

// RegisterAdmin creates an account with the admin role.
func (h *AdminHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, entity.RoleAdmin, "Admin created successfully")
}

func (h *AdminHandler) register(c echo.Context, role entity.Role, message string) error {
	var req RegisterOperatorRequest
	if ok, err := bindAndValidate(c, &req, "Invalid operator input"); !ok {
		return err
	}

	operator, err := h.operatorUC.RegisterOperator(c.Request().Context(), &usecase.RegisterOperatorInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, operator, message)
}
