package handler

import (
	"github.com/talentia/contracts-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateContractInput(req createContractRequest) ports.CreateContractInput {
	milestones := make([]ports.MilestoneInput, 0, len(req.Milestones))
	for _, m := range req.Milestones {
		milestones = append(milestones, ports.MilestoneInput{
			Name:        m.Name,
			Description: m.Description,
			Amount:      m.Amount,
			DueDate:     m.DueDate,
		})
	}

	return ports.CreateContractInput{
		Freelancer:   ports.PartyInput{ID: req.Freelancer.ID, Name: req.Freelancer.Name},
		Client:       ports.PartyInput{ID: req.Client.ID, Name: req.Client.Name},
		Value:        req.Value,
		Currency:     req.Currency,
		PaymentTerms: req.PaymentTerms,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Terms:        req.Terms,
		Deliverables: req.Deliverables,
		Milestones:   milestones,
	}
}

func toUpdateContractInput(req updateContractRequest) ports.UpdateContractInput {
	return ports.UpdateContractInput{
		Value:        req.Value,
		Currency:     req.Currency,
		PaymentTerms: req.PaymentTerms,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Terms:        req.Terms,
		Deliverables: req.Deliverables,
	}
}

// --- Service result → HTTP response ---

func toCreateContractResponse(r *ports.CreateContractResult) createContractResponse {
	return createContractResponse{
		ContractID: r.ContractID,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt.UTC(),
		Message:    r.Message,
		Links: contractLinks{
			Self:       "/v1/contracts/" + r.ContractID,
			Signatures: "/v1/contracts/" + r.ContractID + "/signatures",
		},
	}
}

func toSignContractResponse(r *ports.SignContractResult) signContractResponse {
	return signContractResponse{
		ContractID:      r.ContractID,
		Status:          r.Status,
		SignatureCount:  r.SignatureCount,
		FullyExecuted:   r.FullyExecuted,
		IntegrityAnchor: r.IntegrityAnchor,
		Message:         r.Message,
	}
}
