package http

import (
	"log/slog"
	"net/http"

	"github.com/jameselite/jobpulse/internal/domain/auth"
	"github.com/jameselite/jobpulse/internal/domain/notification"
	"github.com/jameselite/jobpulse/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// List implements NotificationHandler.
func (n *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	notifications, err := n.notificationService.List(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to list notifications", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, notifications)
}
