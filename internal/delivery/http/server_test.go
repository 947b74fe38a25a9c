package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crm/config"
	apimiddleware "crm/internal/delivery/http/middleware"
	"crm/internal/delivery/http/router"
	"crm/internal/delivery/http/router/handler"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/infra/auth"
	mockUC "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo           *echo.Echo
	tokens         service.TokenService
	customerUC     *mockUC.MockCustomerUsecase
	activityUC     *mockUC.MockActivityUsecase
	recommendation *mockUC.MockRecommendationUsecase
	catalogUC      *mockUC.MockCatalogUsecase
	operatorUC     *mockUC.MockOperatorUsecase
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
	RequestID string `json:"request_id"`
}

func createTestAPI(t *testing.T) apiFixtures {
	cfg := &config.Config{SecretKey: config.SecretKey{Access: "test-secret"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	fx := apiFixtures{
		tokens:         tokens,
		customerUC:     mockUC.NewMockCustomerUsecase(t),
		activityUC:     mockUC.NewMockActivityUsecase(t),
		recommendation: mockUC.NewMockRecommendationUsecase(t),
		catalogUC:      mockUC.NewMockCatalogUsecase(t),
		operatorUC:     mockUC.NewMockOperatorUsecase(t),
	}

	fx.echo = newEcho(cfg, logger, router.RouterParams{
		AuthHandler:  handler.NewAuthHandler(handler.AuthHandlerParams{OperatorUC: fx.operatorUC, Logger: logger}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{OperatorUC: fx.operatorUC, Logger: logger}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: fx.catalogUC,
			Logger:    logger,
		}),
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{
			CustomerUC:       fx.customerUC,
			ActivityUC:       fx.activityUC,
			RecommendationUC: fx.recommendation,
			Logger:           logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenService: tokens, Logger: logger}),
	})

	return fx
}

func (fx apiFixtures) token(t *testing.T, role entity.Role) string {
	token, err := fx.tokens.GenerateAccessToken(uuid.New(), role.Grants().ToStrings())
	require.NoError(t, err)

	return token
}

func (fx apiFixtures) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	fx.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_RequiresToken(t *testing.T) {
	fx := createTestAPI(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "garbage", header: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := fx.do(t, http.MethodGet, "/api/v1/customers/1", tt.header, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestAPI_AdminRoutesRejectUsers(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/admin/products", fx.token(t, entity.RoleUser), `{"title":"Kettle"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestAPI_AdminCreatesProduct(t *testing.T) {
	fx := createTestAPI(t)

	fx.catalogUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(input *usecase.CreateProductInput) bool {
			return input.Title == "Kettle" && input.Price.Equal(decimal.RequireFromString("24.99")) && input.Rating == 4
		})).
		Return(&entity.Product{ID: 1, Title: "Kettle"}, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/admin/products", fx.token(t, entity.RoleAdmin),
		`{"title":"Kettle","price":"24.99","available":true,"rating":4}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
}

func TestAPI_AdminRegistersOperator(t *testing.T) {
	fx := createTestAPI(t)

	fx.operatorUC.EXPECT().
		RegisterOperator(mock.Anything, &usecase.RegisterOperatorInput{Email: "ops@example.com", Password: "Password123", Role: entity.RoleUser}).
		Return(&entity.Operator{Email: "ops@example.com", Role: entity.RoleUser}, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/admin/operators", fx.token(t, entity.RoleAdmin),
		`{"email":"ops@example.com","password":"Password123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, string(env.Data), "Password")
}

func TestAPI_Login(t *testing.T) {
	fx := createTestAPI(t)

	fx.operatorUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ops@example.com", Password: "Password123"}).
		Return(&usecase.LoginOutput{AccessToken: "tok", ExpiresIn: 15 * time.Minute, Operator: &entity.Operator{}}, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"ops@example.com","password":"Password123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var data handler.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "tok", data.AccessToken)
	assert.Equal(t, int64(900), data.ExpiresIn)
}

func TestAPI_LoginRejectsBadCredentials(t *testing.T) {
	fx := createTestAPI(t)

	fx.operatorUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	rec, env := fx.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"ops@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestAPI_CreateActivity(t *testing.T) {
	fx := createTestAPI(t)
	token := fx.token(t, entity.RoleUser)

	t.Run("accepted", func(t *testing.T) {
		fx.activityUC.EXPECT().CreateActivity(mock.Anything, int64(7), "purchase").
			Return(&entity.Activity{ID: 1, CustomerID: 7, Type: entity.ActivityPurchase}, nil).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/customers/7/activities", token, `{"activity_type":"purchase"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
	})

	t.Run("invalid type", func(t *testing.T) {
		fx.activityUC.EXPECT().CreateActivity(mock.Anything, int64(7), "refund").
			Return(nil, errors.Wrap(domainerrors.ErrInvalidActivityType, `activity type "refund"`)).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/customers/7/activities", token, `{"activity_type":"refund"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ACTIVITY_TYPE", env.Error.Code)
	})

	t.Run("unknown customer", func(t *testing.T) {
		fx.activityUC.EXPECT().CreateActivity(mock.Anything, int64(8), "purchase").
			Return(nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer 8")).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/customers/8/activities", token, `{"activity_type":"purchase"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CUSTOMER_NOT_FOUND", env.Error.Code)
	})

	t.Run("missing type", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodPost, "/api/v1/customers/7/activities", token, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "activity_type")
	})

	t.Run("bad customer id", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodPost, "/api/v1/customers/abc/activities", token, `{"activity_type":"purchase"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_CUSTOMER_ID", env.Error.Code)
	})
}

func TestAPI_UpdateStage(t *testing.T) {
	fx := createTestAPI(t)
	token := fx.token(t, entity.RoleUser)

	fx.customerUC.EXPECT().UpdateStage(mock.Anything, int64(3), "CHURNED").Return(nil).Once()
	fx.customerUC.EXPECT().UpdateStage(mock.Anything, int64(3), "churned").
		Return(errors.Wrap(domainerrors.ErrInvalidStage, `stage "churned"`)).Once()

	rec, _ := fx.do(t, http.MethodPut, "/api/v1/customers/3/stage", token, `{"stage":"CHURNED"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := fx.do(t, http.MethodPut, "/api/v1/customers/3/stage", token, `{"stage":"churned"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STAGE", env.Error.Code)
}

func TestAPI_Recommend(t *testing.T) {
	fx := createTestAPI(t)

	fx.recommendation.EXPECT().Recommend(mock.Anything, int64(5)).
		Return([]*entity.Product{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, nil)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/customers/5/recommendations", fx.token(t, entity.RoleAdmin), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var products []entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Title)
	assert.Equal(t, "B", products[1].Title)
}

func TestAPI_RegisterCustomer(t *testing.T) {
	fx := createTestAPI(t)
	token := fx.token(t, entity.RoleUser)

	fx.customerUC.EXPECT().
		RegisterCustomer(mock.Anything, mock.MatchedBy(func(details entity.CustomerDetails) bool {
			return details.FirstName == "Ada" && details.DateOfBirth != nil && details.DateOfBirth.Year() == 1990
		})).
		Return(&entity.Customer{ID: 1, FirstName: "Ada", CurrentStage: entity.StageNew}, nil)

	rec, _ := fx.do(t, http.MethodPost, "/api/v1/customers", token, `{"first_name":"Ada","date_of_birth":"1990-04-01"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/customers", token, `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_UnhandledErrorIsOpaque(t *testing.T) {
	fx := createTestAPI(t)

	fx.customerUC.EXPECT().GetCustomer(mock.Anything, int64(1)).Return(nil, errors.New("connection refused"))

	rec, env := fx.do(t, http.MethodGet, "/api/v1/customers/1", fx.token(t, entity.RoleUser), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestAPI_StageHistory(t *testing.T) {
	fx := createTestAPI(t)

	fx.customerUC.EXPECT().ListStageHistory(mock.Anything, int64(2)).Return([]*entity.StageTransition{
		{ID: 1, CustomerID: 2, FromStage: entity.StageNew, ToStage: entity.StageActive, Source: entity.TransitionSourceReconciler},
	}, nil)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/customers/2/stage-history", fx.token(t, entity.RoleUser), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"to_stage":"ACTIVE"`)
}

