package usecase

import (
	"context"
	"time"

	"crm/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterOperatorInput defines the data required to create a staff account.
type RegisterOperatorInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required for an operator to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the access token issued on a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
	Operator    *entity.Operator
}

// OperatorUsecase defines staff account operations.
type OperatorUsecase interface {
	RegisterOperator(ctx context.Context, input *RegisterOperatorInput) (*entity.Operator, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// EnsureBootstrapAdmin creates the configured admin unless that email is taken.
	// It reports whether an account was created.
	EnsureBootstrapAdmin(ctx context.Context, email, password string) (bool, error)
}
