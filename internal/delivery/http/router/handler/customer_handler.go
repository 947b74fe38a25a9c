package handler

import (
	"log/slog"
	"net/http"
	"time"

	"crm/internal/delivery/http/response"
	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateOfBirthLayout = time.DateOnly

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC       usecase.CustomerUsecase
	ActivityUC       usecase.ActivityUsecase
	RecommendationUC usecase.RecommendationUsecase
	Logger           *slog.Logger
}

// CustomerHandler serves customer records, their activities and recommendations.
type CustomerHandler struct {
	customerUC       usecase.CustomerUsecase
	activityUC       usecase.ActivityUsecase
	recommendationUC usecase.RecommendationUsecase
	logger           *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC:       params.CustomerUC,
		activityUC:       params.ActivityUC,
		recommendationUC: params.RecommendationUC,
		logger:           params.Logger,
	}
}

// CreateCustomerRequest represents the request body for registering a customer
type CreateCustomerRequest struct {
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=32"`
	Segment     string `json:"segment" validate:"max=64"`
	Gender      string `json:"gender" validate:"max=32"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateStageRequest represents the request body for a stage override
type UpdateStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// CreateActivityRequest represents the request body for recording an activity
type CreateActivityRequest struct {
	ActivityType string `json:"activity_type" validate:"required"`
}

// RegisterCustomer creates a customer at the NEW stage.
func (h *CustomerHandler) RegisterCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if ok, err := bindAndValidate(c, &req, "Invalid customer input"); !ok {
		return err
	}

	details := entity.CustomerDetails{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Segment:   req.Segment,
		Gender:    req.Gender,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateOfBirthLayout, req.DateOfBirth)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "input validation failed", "date_of_birth: datetime=2006-01-02")
		}
		details.DateOfBirth = &dob
	}

	customer, err := h.customerUC.RegisterCustomer(c.Request().Context(), details)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer registered successfully")
}

// GetCustomer returns one customer.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, ok, err := customerIDParam(c)
	if !ok {
		return err
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer, "")
}

// UpdateStage overrides the customer's stage.
func (h *CustomerHandler) UpdateStage(c echo.Context) error {
	customerID, ok, err := customerIDParam(c)
	if !ok {
		return err
	}

	var req UpdateStageRequest
	if ok, err := bindAndValidate(c, &req, "Invalid stage input"); !ok {
		return err
	}

	if err := h.customerUC.UpdateStage(c.Request().Context(), customerID, req.Stage); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"customer_id": customerID,
		"stage":       req.Stage,
	}, "Stage updated successfully")
}

// CreateActivity records an activity for the reconciler to pick up.
func (h *CustomerHandler) CreateActivity(c echo.Context) error {
	customerID, ok, err := customerIDParam(c)
	if !ok {
		return err
	}

	var req CreateActivityRequest
	if ok, err := bindAndValidate(c, &req, "Invalid activity input"); !ok {
		return err
	}

	activity, err := h.activityUC.CreateActivity(c.Request().Context(), customerID, req.ActivityType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, activity, "Activity recorded successfully")
}

// Recommend returns products for the customer's current stage.
func (h *CustomerHandler) Recommend(c echo.Context) error {
	customerID, ok, err := customerIDParam(c)
	if !ok {
		return err
	}

	products, err := h.recommendationUC.Recommend(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ListStageHistory returns the customer's recorded stage transitions.
func (h *CustomerHandler) ListStageHistory(c echo.Context) error {
	customerID, ok, err := customerIDParam(c)
	if !ok {
		return err
	}

	transitions, err := h.customerUC.ListStageHistory(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transitions, "")
}
