// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"minbar/config"
	"minbar/internal/domain/constants"
	"minbar/internal/domain/entity"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/domain/repository"
	"minbar/internal/domain/service"
	"minbar/internal/errors"
	"minbar/internal/infra/webpush"
	"minbar/internal/usecase"
	"minbar/pkg/retry"
)

// defaultMaxAttempts is the retry budget: 2 retries, 3 attempts total.
const defaultMaxAttempts = 3

type pushService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	outcomeRepo      repository.OutcomeRepository
	webSender        service.WebPushSender
	mobileSender     service.MobilePushSender // nil when no credential is configured
	retryCfg         retry.Config
	logger           *slog.Logger
}

// NewPushService creates the delivery core. mobileSender may be nil, in which
// case native targets are dropped at resolution time.
func NewPushService(
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	outcomeRepo repository.OutcomeRepository,
	webSender service.WebPushSender,
	mobileSender service.MobilePushSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PushUsecase {
	retryCfg := retry.Config{
		MaxAttempts:    cfg.Push.MaxAttempts,
		InitialBackoff: cfg.Push.InitialBackoff,
		MaxBackoff:     cfg.Push.MaxBackoff,
		JitterFactor:   cfg.Push.JitterFactor,
	}
	if retryCfg.MaxAttempts <= 0 {
		retryCfg.MaxAttempts = defaultMaxAttempts
	}

	return &pushService{
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		outcomeRepo:      outcomeRepo,
		webSender:        webSender,
		mobileSender:     mobileSender,
		retryCfg:         retryCfg,
		logger:           logger,
	}
}

// webPayload is the JSON document delivered to web subscriptions.
type webPayload struct {
	Title          string `json:"title"`
	Body           string `json:"body"`
	ImageURL       string `json:"image_url,omitempty"`
	Link           string `json:"link,omitempty"`
	NotificationID string `json:"notification_id"`
}

// Send executes one delivery batch for a notification.
func (s *pushService) Send(ctx context.Context, req *usecase.SendRequest) (*usecase.SendResult, error) {
	if req.Platform != "" && !entity.ValidPlatform(req.Platform) {
		return nil, domainerrors.ErrInvalidPlatform
	}

	notification, err := s.notificationRepo.FindNotificationByID(ctx, req.NotificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, err
	}

	targets, err := s.resolveTargets(ctx, notification, req)
	if err != nil {
		return nil, err
	}

	if req.DryRun {
		// Resolution only: no dispatch, no ledger rows, no state changes.
		return &usecase.SendResult{
			NotificationID: notification.ID,
			Status:         notification.Status,
			Totals:         usecase.Totals{Targets: len(targets)},
			PerPlatform:    map[string]usecase.PlatformTally{},
		}, nil
	}

	perPlatform := make(map[string]usecase.PlatformTally)
	totalSent, totalFailed := 0, 0

	payload, err := json.Marshal(webPayload{
		Title:          notification.Title,
		Body:           notification.Body,
		ImageURL:       notification.ImageURL,
		Link:           notification.Link,
		NotificationID: notification.ID.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode push payload")
	}

	// Strictly sequential fan-out. Backoff sleeps are the only suspension
	// points, which keeps ledger-write ordering deterministic and bounds
	// concurrent load on the push vendor.
	for _, token := range targets {
		outcome := s.dispatchOne(ctx, notification, token, payload)

		tally := perPlatform[token.Platform]
		if outcome.Status == entity.OutcomeStatusSent {
			totalSent++
			tally.Sent++
		} else {
			totalFailed++
			tally.Failed++
		}
		perPlatform[token.Platform] = tally

		s.recordOutcome(ctx, outcome)
	}

	// A batch with zero targets or at least one success counts as sent;
	// only a batch where every attempted target failed is marked failed.
	status := entity.NotificationStatusSent
	if totalFailed > 0 && totalSent == 0 {
		status = entity.NotificationStatusFailed
	}

	sentAt := time.Now()
	if err := s.notificationRepo.UpdateSendResult(ctx, notification.ID, status, sentAt, totalSent, totalFailed); err != nil {
		return nil, errors.Wrap(err, "failed to record batch result")
	}

	return &usecase.SendResult{
		NotificationID: notification.ID,
		Status:         status,
		Totals: usecase.Totals{
			Sent:    totalSent,
			Failed:  totalFailed,
			Targets: len(targets),
		},
		PerPlatform: perPlatform,
	}, nil
}

// resolveTargets narrows the audience to enabled tokens on deliverable
// platforms. Native platforms are silently dropped when no mobile sender is
// configured; those tokens produce no ledger rows and are not counted.
func (s *pushService) resolveTargets(ctx context.Context, notification *entity.Notification, req *usecase.SendRequest) ([]*entity.DeviceToken, error) {
	platforms := resolvePlatforms(notification.TargetPlatform, req.Platform)

	if s.mobileSender == nil {
		deliverable := platforms[:0]
		for _, p := range platforms {
			if p == entity.PlatformWeb {
				deliverable = append(deliverable, p)
			}
		}
		platforms = deliverable
	}

	if len(platforms) == 0 {
		return nil, nil
	}

	tokens, err := s.deviceRepo.FindEligibleTokens(ctx, repository.TokenFilter{
		Platforms: platforms,
		DeviceID:  req.DeviceID,
		TokenID:   req.TokenID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve targets")
	}

	return tokens, nil
}

// dispatchOne sends to a single token with the full retry budget and returns
// the ledger row describing the final outcome.
func (s *pushService) dispatchOne(ctx context.Context, notification *entity.Notification, token *entity.DeviceToken, payload []byte) *entity.DeliveryOutcome {
	outcome := &entity.DeliveryOutcome{
		NotificationID: notification.ID,
		TokenID:        token.ID,
		Platform:       token.Platform,
		Stage:          constants.StageDispatch,
	}
	if token.IsWeb() {
		outcome.Endpoint = token.Endpoint
		outcome.EndpointHost = webpush.EndpointHost(token.Endpoint)
		outcome.Browser = webpush.InferBrowser(token.Endpoint)
	}

	var providerID string
	sendErr := retry.Do(ctx, s.retryCfg, func() error {
		var attemptErr error
		providerID, attemptErr = s.sendOnce(ctx, notification, token, payload)

		return attemptErr
	})

	if sendErr == nil {
		outcome.Status = entity.OutcomeStatusSent
		outcome.ProviderMessageID = providerID

		return outcome
	}

	outcome.Status = entity.OutcomeStatusFailed
	outcome.ErrorCode = classifyError(sendErr)
	outcome.ErrorMessage = sendErr.Error()

	terminal := isTerminalCode(outcome.ErrorCode)
	if !terminal && !token.IsWeb() && s.mobileSender != nil {
		terminal = s.mobileSender.IsUnregistered(sendErr)
	}
	if terminal {
		s.disableToken(ctx, token)
	}

	return outcome
}

// sendOnce performs a single protocol attempt on the right transport.
func (s *pushService) sendOnce(ctx context.Context, notification *entity.Notification, token *entity.DeviceToken, payload []byte) (string, error) {
	if token.IsWeb() {
		return s.webSender.Send(ctx, token, payload)
	}

	data := map[string]string{
		"notification_id": notification.ID.String(),
	}
	if notification.Link != "" {
		data["link"] = notification.Link
	}
	if notification.ImageURL != "" {
		data["image_url"] = notification.ImageURL
	}

	providerID, err := s.mobileSender.Send(ctx, token, notification.Title, notification.Body, data)
	if err != nil && s.mobileSender.IsUnregistered(err) {
		// The provider explicitly invalidated the token; retrying is pointless.
		return "", retry.Permanent(err)
	}

	return providerID, err
}

// disableToken flips the enabled flag. The flip is idempotent, so failures
// here are logged and swallowed; the batch continues regardless.
func (s *pushService) disableToken(ctx context.Context, token *entity.DeviceToken) {
	if err := s.deviceRepo.DisableToken(ctx, token.ID); err != nil {
		s.logger.Error("failed to disable stale token",
			slog.String("token_id", token.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// recordOutcome appends a ledger row best-effort. A ledger write failure
// never aborts the batch; the authoritative tallies live in memory.
func (s *pushService) recordOutcome(ctx context.Context, outcome *entity.DeliveryOutcome) {
	if err := s.outcomeRepo.CreateOutcome(ctx, outcome); err != nil {
		s.logger.Error("failed to record delivery outcome",
			slog.String("notification_id", outcome.NotificationID.String()),
			slog.String("token_id", outcome.TokenID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// resolvePlatforms resolves the concrete platform list targeted by a batch.
// An explicit request platform overrides the notification's stored target
// platform entirely; the stored target only applies when the request leaves
// the platform unset.
func resolvePlatforms(target, override string) []string {
	expand := func(p string) []string {
		if p == "" || p == entity.PlatformAll {
			return []string{entity.PlatformAndroid, entity.PlatformIOS, entity.PlatformWeb}
		}

		return []string{p}
	}

	if override != "" {
		return expand(override)
	}

	return expand(target)
}
