package handler

// domainEventRequest is the envelope accepted by the internal notify
// endpoint. Type selects the emitter; the remaining fields are read
// per-type, extra fields are ignored.
type domainEventRequest struct {
	Type string `json:"type" validate:"required"`

	// Recipients, depending on the event type.
	UserID       string `json:"user_id"`
	CompanyID    string `json:"company_id"`
	FreelancerID string `json:"freelancer_id"`
	ClientID     string `json:"client_id"`

	// Event parameters.
	ActorName      string  `json:"actor_name"`
	JobTitle       string  `json:"job_title"`
	JobID          string  `json:"job_id"`
	ApplicationID  string  `json:"application_id"`
	Status         string  `json:"status"`
	ConversationID string  `json:"conversation_id"`
	ContractTitle  string  `json:"contract_title"`
	ContractID     string  `json:"contract_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	PaymentID      string  `json:"payment_id"`
	ProjectName    string  `json:"project_name"`
	ProjectID      string  `json:"project_id"`
	EvaluationID   string  `json:"evaluation_id"`
	TaskName       string  `json:"task_name"`
	TaskID         string  `json:"task_id"`
	Context        string  `json:"context"`
	RefID          string  `json:"ref_id"`
	InvitationID   string  `json:"invitation_id"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}
