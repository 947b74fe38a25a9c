package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// operatorService implements the OperatorUsecase interface.
type operatorService struct {
	operatorRepo repository.OperatorRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// OperatorServiceParams holds dependencies for OperatorService, injected by Fx.
type OperatorServiceParams struct {
	fx.In

	OperatorRepo repository.OperatorRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewOperatorService is the constructor for operatorService.
func NewOperatorService(params OperatorServiceParams) usecase.OperatorUsecase {
	return &operatorService{
		operatorRepo: params.OperatorRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *operatorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterOperator creates a staff account with a hashed password.
func (srv *operatorService) RegisterOperator(ctx context.Context, input *usecase.RegisterOperatorInput) (*entity.Operator, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password must be at least 8 characters")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + role.String())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash operator password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	operator := &entity.Operator{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if err := srv.operatorRepo.Create(ctx, operator); err != nil {
		return nil, errors.Wrap(err, "failed to create operator")
	}

	srv.log(ctx).Info("Operator registered", slog.Any("operatorID", operator.ID), slog.String("role", role.String()))

	return operator, nil
}

// Login checks the credentials and issues an access token.
// Unknown emails and wrong passwords fail the same way.
func (srv *operatorService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	operator, err := srv.operatorRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrOperatorNotFound) {
		srv.log(ctx).Warn("Login for unknown operator", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown operator")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find operator")
	}

	if !srv.hasher.Check(input.Password, operator.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.Any("operatorID", operator.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(operator.ID, operator.Role.Grants().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		ExpiresIn:   srv.tokenService.AccessTokenTTL(),
		Operator:    operator,
	}, nil
}

// EnsureBootstrapAdmin seeds the first admin. An empty email disables seeding.
func (srv *operatorService) EnsureBootstrapAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}

	_, err := srv.operatorRepo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrOperatorNotFound) {
		return false, errors.Wrap(err, "failed to look up bootstrap admin")
	}

	_, err = srv.RegisterOperator(ctx, &usecase.RegisterOperatorInput{
		Email:    email,
		Password: password,
		Role:     entity.RoleAdmin,
	})
	// Another replica may have seeded the same account first.
	if errors.Is(err, domainerrors.ErrOperatorAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to create bootstrap admin")
	}

	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
