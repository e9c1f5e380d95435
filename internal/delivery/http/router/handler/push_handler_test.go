package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"minbar/internal/delivery/http/validator"
	domainerrors "minbar/internal/domain/errors"
	mockUsecase "minbar/internal/mocks/usecase"
	"minbar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockPushUsecase) {
	pushSvc := mockUsecase.NewMockPushUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPushHandler(pushSvc, logger), pushSvc
}

func postSend(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/api/push/send", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.Send(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_Send_ReturnsBatchAccounting(t *testing.T) {
	h, pushSvc := createTestPushHandler(t)

	notificationID := uuid.New()
	pushSvc.EXPECT().Send(mock.Anything, mock.MatchedBy(func(req *usecase.SendRequest) bool {
		return req.NotificationID == notificationID
	})).Return(&usecase.SendResult{
		NotificationID: notificationID,
		Status:         "sent",
		Totals:         usecase.Totals{Sent: 2, Failed: 1, Targets: 3},
		PerPlatform:    map[string]usecase.PlatformTally{"web": {Sent: 2, Failed: 1}},
	}, nil)

	rec := postSend(h, `{"notificationId":"`+notificationID.String()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body sendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, notificationID.String(), body.NotificationID)
	assert.Equal(t, usecase.Totals{Sent: 2, Failed: 1, Targets: 3}, body.Totals)
}

func TestPushHandler_Send_MissingNotificationID(t *testing.T) {
	h, _ := createTestPushHandler(t)

	// No dispatch and no database lookup happen for an incomplete request.
	rec := postSend(h, `{"platform":"web"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestPushHandler_Send_MalformedDeviceID(t *testing.T) {
	h, _ := createTestPushHandler(t)

	rec := postSend(h, `{"notificationId":"`+uuid.NewString()+`","deviceId":"`+strings.Repeat("x", 256)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_Send_UnknownNotification(t *testing.T) {
	h, pushSvc := createTestPushHandler(t)

	pushSvc.EXPECT().Send(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrNotificationNotFound)

	rec := postSend(h, `{"notificationId":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body sendErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}
