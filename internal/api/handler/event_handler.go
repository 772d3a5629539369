package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentia/contracts-system/internal/api/metrics"
	"github.com/talentia/contracts-system/internal/core/domain"
	"github.com/talentia/contracts-system/internal/core/ports"
)

// EventHandler receives domain events from the sibling services (jobs, chat,
// payments, projects, tasks) and routes each to its typed emitter. Contract
// events are emitted in-process by the contract handler; everything else
// arrives here.
type EventHandler struct {
	notifier ports.Notifier
}

func NewEventHandler(notifier ports.Notifier) *EventHandler {
	return &EventHandler{notifier: notifier}
}

// Receive handles POST /internal/v1/events — emits the notification(s) for
// one domain event.
//
// @Summary      Emit notifications for a domain event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domainEventRequest  true  "Domain event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /internal/v1/events [post]
func (h *EventHandler) Receive(c echo.Context) error {
	var req domainEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ctx := c.Request().Context()
	var err error

	switch domain.NotificationType(req.Type) {
	case domain.NotifJobApplication:
		err = h.notifier.JobApplication(ctx, req.CompanyID, req.ActorName, req.JobTitle, req.ApplicationID)
	case domain.NotifJobPosted:
		err = h.notifier.JobPosted(ctx, req.UserID, req.JobTitle, req.JobID)
	case domain.NotifApplicationStatus:
		err = h.notifier.ApplicationStatus(ctx, req.UserID, req.JobTitle, req.Status, req.ApplicationID)
	case domain.NotifNewMessage:
		err = h.notifier.NewMessage(ctx, req.UserID, req.ActorName, req.ConversationID)
	case domain.NotifContractSigned:
		err = h.notifier.ContractSigned(ctx, req.FreelancerID, req.ClientID, req.ContractTitle, req.ContractID)
	case domain.NotifPaymentReceived:
		err = h.notifier.PaymentReceived(ctx, req.UserID, req.Amount, req.Currency, req.PaymentID)
	case domain.NotifPaymentSent:
		err = h.notifier.PaymentSent(ctx, req.UserID, req.Amount, req.Currency, req.PaymentID)
	case domain.NotifProjectCompleted:
		err = h.notifier.ProjectCompleted(ctx, req.FreelancerID, req.ClientID, req.ProjectName, req.ProjectID)
	case domain.NotifEvaluationReceived:
		err = h.notifier.EvaluationReceived(ctx, req.UserID, req.ActorName, req.EvaluationID)
	case domain.NotifTaskAssigned:
		err = h.notifier.TaskAssigned(ctx, req.UserID, req.TaskName, req.ProjectName, req.TaskID)
	case domain.NotifMention:
		err = h.notifier.Mention(ctx, req.UserID, req.ActorName, req.Context, req.RefID)
	case domain.NotifInvitationAccepted:
		err = h.notifier.InvitationAccepted(ctx, req.UserID, req.ActorName, req.InvitationID)
	case domain.NotifTaskStatusChanged:
		err = h.notifier.TaskStatusChanged(ctx, req.UserID, req.TaskName, req.Status, req.TaskID)
	default:
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown event type: "+req.Type)
	}

	if err != nil {
		return err
	}
	metrics.NotificationEventsTotal.WithLabelValues(req.Type).Inc()
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}
