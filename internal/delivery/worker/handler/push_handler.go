// Package handler contains the Pub/Sub push handlers of the worker.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/constants"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/infra/pubsub"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler records stage change events delivered by Pub/Sub push.
type PushHandler struct {
	verify       func(req *http.Request) error
	logger       *slog.Logger
	stageHistory usecase.StageHistoryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	StageHistory usecase.StageHistoryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are only
// verified for the Google provider outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:       params.Logger,
		stageHistory: params.StageHistory,
	}

	cfg := params.Config
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop {
		audience := cfg.PubSub.PushAudience
		h.verify = func(req *http.Request) error {
			return verifyPubSubToken(req, audience)
		}
	}

	return h
}

// HandlePush acknowledges with 2xx unless the event should be redelivered.
// Malformed or unapplicable events are acknowledged so they are not retried forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodeStageChanged(&pushMsg)
	if err != nil {
		logger.Error("[Worker] Failed to decode stage changed event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Prefer the publisher's request id so the log lines join up across processes.
	if event.RequestID != "" {
		ctx = deliverycontext.WithCorrelation(ctx, event.RequestID, h.logger)
		logger = deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	}

	if err := h.stageHistory.RecordStageTransition(ctx, event); err != nil {
		retryable := !errors.Is(err, domainerrors.ErrValidationFailed) &&
			!errors.Is(err, domainerrors.ErrInvalidStage) &&
			!errors.Is(err, domainerrors.ErrCustomerNotFound)

		logger.Error("[Worker] Failed to record stage change",
			slog.String("event_id", event.EventID),
			slog.Int64("customer_id", event.CustomerID),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to push requests.
// An empty audience means the URL of this endpoint.
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
