package handler

import (
	"log/slog"
	"net/http"

	"minbar/internal/delivery/http/response"
	"minbar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification authoring handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateNotification handles draft notification creation.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var input *usecase.CreateNotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	notification, err := h.uc.CreateNotification(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, notification, "Notification created")
}

// GetNotification handles fetching one notification by ID.
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	notification, err := h.uc.GetNotification(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification, "")
}

// ListNotifications handles the listing view, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	limit, offset := paginationParams(c)

	notifications, err := h.uc.ListNotifications(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// ListOutcomes handles the per-notification delivery ledger view.
func (h *NotificationHandler) ListOutcomes(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	limit, offset := paginationParams(c)

	outcomes, err := h.uc.ListOutcomes(c.Request().Context(), id, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcomes, "")
}
