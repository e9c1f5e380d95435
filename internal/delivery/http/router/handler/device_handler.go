package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"minbar/internal/delivery/http/response"
	"minbar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device-token handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterToken handles device token registration from clients.
func (h *DeviceHandler) RegisterToken(c echo.Context) error {
	var input *usecase.RegisterTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	token, err := h.uc.RegisterToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, token, "Device token registered")
}

// ListTokens handles the admin diagnostics listing.
func (h *DeviceHandler) ListTokens(c echo.Context) error {
	limit, offset := paginationParams(c)

	tokens, err := h.uc.ListTokens(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokens, "")
}

// paginationParams reads limit/offset query parameters with sane defaults.
func paginationParams(c echo.Context) (limit, offset int) {
	limit = 50
	offset = 0

	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		offset = v
	}

	return limit, offset
}
