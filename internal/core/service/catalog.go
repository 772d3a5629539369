package service

import "github.com/talentia/contracts-system/internal/core/domain"

// MessageTemplate is the fixed wording of one notification event. Format is
// a fmt.Sprintf template applied to the emitter's parameters, in the order
// the emitter documents them.
type MessageTemplate struct {
	Title  string
	Format string
}

// MessageCatalog maps each event type to its wording. Swapping the catalog
// localizes every emitter without touching dispatch logic.
type MessageCatalog map[domain.NotificationType]MessageTemplate

// DefaultCatalog is the wording shipped with the marketplace (Spanish).
var DefaultCatalog = MessageCatalog{
	domain.NotifJobApplication: {
		Title:  "Nueva postulación",
		Format: "%s se ha postulado a tu oferta «%s»",
	},
	domain.NotifJobPosted: {
		Title:  "Nueva oferta publicada",
		Format: "Se ha publicado una nueva oferta: «%s»",
	},
	domain.NotifApplicationStatus: {
		Title:  "Estado de tu postulación",
		Format: "Tu postulación a «%s» cambió a: %s",
	},
	domain.NotifNewMessage: {
		Title:  "Nuevo mensaje",
		Format: "Has recibido un nuevo mensaje de %s",
	},
	domain.NotifContractSigned: {
		Title:  "Contrato firmado",
		Format: "El contrato «%s» ha sido firmado por ambas partes",
	},
	domain.NotifPaymentReceived: {
		Title:  "Pago recibido",
		Format: "Has recibido un pago de %.2f %s",
	},
	domain.NotifPaymentSent: {
		Title:  "Pago enviado",
		Format: "Has enviado un pago de %.2f %s",
	},
	domain.NotifProjectCompleted: {
		Title:  "Proyecto completado",
		Format: "El proyecto «%s» ha sido completado",
	},
	domain.NotifEvaluationReceived: {
		Title:  "Nueva evaluación",
		Format: "%s te ha dejado una evaluación",
	},
	domain.NotifTaskAssigned: {
		Title:  "Tarea asignada",
		Format: "Se te ha asignado la tarea «%s» en el proyecto %s",
	},
	domain.NotifMention: {
		Title:  "Te han mencionado",
		Format: "%s te ha mencionado en %s",
	},
	domain.NotifInvitationAccepted: {
		Title:  "Invitación aceptada",
		Format: "%s ha aceptado tu invitación",
	},
	domain.NotifTaskStatusChanged: {
		Title:  "Tarea actualizada",
		Format: "La tarea «%s» cambió a estado: %s",
	},
}
