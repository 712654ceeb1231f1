package usecase

import (
	"budget_service/internal/domain/entities"
)

// approvalStage is one step of the request -> review -> approved chain.
type approvalStage struct {
	// check validates the persisted request before the stage applies.
	check func(br entities.BudgetRequest) error
	// next is the status the request moves to.
	next entities.BudgetStatus
	// sign records the approver on the patch.
	sign func(p *entities.ApprovalPatch, userID string)
}

var approvalStages = map[entities.Role]approvalStage{
	entities.RolePreSale: {
		check: func(br entities.BudgetRequest) error {
			if br.ApprovedByPreSale != "" {
				return ErrAlreadyValidatedByPreSale
			}
			return nil
		},
		next: entities.BudgetStatusReview,
		sign: func(p *entities.ApprovalPatch, userID string) { p.ApprovedByPreSale = userID },
	},
	entities.RoleFinancial: {
		check: func(br entities.BudgetRequest) error {
			if br.ApprovedByFinancial != "" {
				return ErrAlreadyValidatedByFinancial
			}
			if br.ApprovedByPreSale == "" {
				return ErrPreSaleApprovalRequired
			}
			return nil
		},
		next: entities.BudgetStatusApproved,
		sign: func(p *entities.ApprovalPatch, userID string) { p.ApprovedByFinancial = userID },
	},
}

// visibleStatus is the single status each role works on.
var visibleStatus = map[entities.Role]entities.BudgetStatus{
	entities.RolePreSale:   entities.BudgetStatusRequest,
	entities.RoleFinancial: entities.BudgetStatusReview,
}

// buildApprovalPatch keeps approvers already recorded and adds the caller's.
func buildApprovalPatch(stage approvalStage, current entities.BudgetRequest, userID string, notes string) entities.ApprovalPatch {
	p := entities.ApprovalPatch{
		ExpectedVersion:     current.Version,
		Status:              stage.next,
		ApprovedByPreSale:   current.ApprovedByPreSale,
		ApprovedByFinancial: current.ApprovedByFinancial,
	}
	stage.sign(&p, userID)
	if notes != "" {
		p.Notes = &notes
	}
	return p
}
