package handler

import (
	"log/slog"
	"net/http"

	"minbar/internal/delivery/http/response"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PushHandler holds dependencies for the dispatch invocation endpoint.
type PushHandler struct {
	uc     usecase.PushUsecase
	logger *slog.Logger
}

// NewPushHandler is the constructor for PushHandler, injected by Fx.
func NewPushHandler(uc usecase.PushUsecase, logger *slog.Logger) *PushHandler {
	return &PushHandler{
		uc:     uc,
		logger: logger,
	}
}

// sendResponse is the invocation contract of the dispatch endpoint. It is
// deliberately flat rather than wrapped in the standard envelope, because the
// scheduler and operational tooling consume it directly.
type sendResponse struct {
	OK             bool                             `json:"ok"`
	NotificationID string                           `json:"notificationId"`
	Status         string                           `json:"status"`
	Totals         usecase.Totals                   `json:"totals"`
	PerPlatform    map[string]usecase.PlatformTally `json:"perPlatform"`
}

type sendErrorResponse struct {
	Error string `json:"error"`
}

// Send executes one delivery batch and returns the per-batch accounting.
func (h *PushHandler) Send(c echo.Context) error {
	req := new(usecase.SendRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, sendErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, sendErrorResponse{Error: "invalid request body"})
	}

	result, err := h.uc.Send(c.Request().Context(), req)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return c.JSON(appErr.HTTPCode(), sendErrorResponse{Error: appErr.Message()})
		}

		h.logger.Error("push dispatch failed",
			slog.String("notification_id", req.NotificationID.String()),
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, sendErrorResponse{Error: "dispatch failed"})
	}

	return c.JSON(http.StatusOK, sendResponse{
		OK:             true,
		NotificationID: result.NotificationID.String(),
		Status:         result.Status,
		Totals:         result.Totals,
		PerPlatform:    result.PerPlatform,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
