package handler

import "time"

type partyRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type milestoneRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" validate:"gt=0"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

type createContractRequest struct {
	Freelancer   partyRequest       `json:"freelancer" validate:"required"`
	Client       partyRequest       `json:"client" validate:"required"`
	Value        float64            `json:"value" validate:"gt=0"`
	Currency     string             `json:"currency" validate:"required,len=3"`
	PaymentTerms string             `json:"payment_terms" validate:"required,oneof=hourly fixed milestone"`
	StartDate    time.Time          `json:"start_date" validate:"required"`
	EndDate      time.Time          `json:"end_date" validate:"required"`
	Terms        string             `json:"terms"`
	Deliverables []string           `json:"deliverables"`
	Milestones   []milestoneRequest `json:"milestones" validate:"dive"`
}

type updateContractRequest struct {
	Value        *float64   `json:"value" validate:"omitempty,gt=0"`
	Currency     *string    `json:"currency" validate:"omitempty,len=3"`
	PaymentTerms *string    `json:"payment_terms" validate:"omitempty,oneof=hourly fixed milestone"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Terms        *string    `json:"terms"`
	Deliverables *[]string  `json:"deliverables"`
}

type walletProofRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required"`
	Signature     string `json:"signature" validate:"required"`
	ContentHash   string `json:"content_hash" validate:"required"`
}

type signContractRequest struct {
	Wallet *walletProofRequest `json:"wallet"`
}

type updateMilestoneRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress completed approved"`
}

type createContractResponse struct {
	ContractID string        `json:"contract_id"`
	Status     string        `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	Message    string        `json:"message"`
	Links      contractLinks `json:"_links"`
}

type contractLinks struct {
	Self       string `json:"self"`
	Signatures string `json:"signatures"`
}

type signContractResponse struct {
	ContractID      string `json:"contract_id"`
	Status          string `json:"status"`
	SignatureCount  int    `json:"signature_count"`
	FullyExecuted   bool   `json:"fully_executed"`
	IntegrityAnchor string `json:"integrity_anchor,omitempty"`
	Message         string `json:"message"`
}
