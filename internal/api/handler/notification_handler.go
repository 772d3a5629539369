package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentia/contracts-system/internal/core/ports"
)

// NotificationHandler handles the per-user notification queries and read
// state mutations. Every route is scoped to the authenticated user.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type unreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type markAllReadResponse struct {
	Marked int64 `json:"marked"`
}

// List handles GET /v1/notifications — the authenticated user's most recent
// notifications, newest first, capped at 50.
//
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.ListForUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /v1/notifications/unread-count.
//
// @Summary      Count own unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Router       /v1/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	count, err := h.service.UnreadCount(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Unread: count})
}

// MarkRead handles POST /v1/notifications/:id/read. A notification owned by
// a different user is treated as not found.
//
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      204  "marked"
// @Failure      404  {object}  map[string]string
// @Router       /v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAsRead(c.Request().Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead handles POST /v1/notifications/read-all.
//
// @Summary      Mark all own notifications as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  markAllReadResponse
// @Router       /v1/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	marked, err := h.service.MarkAllAsRead(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, markAllReadResponse{Marked: marked})
}
