package usecase

import (
	"errors"
	"strings"
	"testing"

	"budget_service/internal/domain/entities"
)

func TestValidationHelpers(t *testing.T) {
	t.Run("checkHasDuplicates", func(t *testing.T) {
		if err := checkHasDuplicates([]string{"a", "b", "", ""}, ErrDuplicateQuestion); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err := checkHasDuplicates([]string{"a", "b", "a"}, ErrDuplicateQuestion)
		if !errors.Is(err, ErrDuplicateQuestion) {
			t.Fatalf("expected ErrDuplicateQuestion, got %v", err)
		}
		if !strings.Contains(err.Error(), "duplicate question: a") {
			t.Fatalf("expected duplicated value in message, got %q", err.Error())
		}
	})

	t.Run("canonicalID", func(t *testing.T) {
		for _, v := range []string{requestID, " " + requestID + " ", strings.ToUpper(requestID)} {
			got, err := canonicalID(v, ErrInvalidBudgetRequestID)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", v, err)
			}
			if got != requestID {
				t.Fatalf("expected %s for %q, got %s", requestID, v, got)
			}
		}
		for _, v := range []string{"", "abc", "{" + requestID + "}", "urn:uuid:" + requestID, strings.ReplaceAll(requestID, "-", "")} {
			if _, err := canonicalID(v, ErrInvalidBudgetRequestID); !errors.Is(err, ErrInvalidBudgetRequestID) {
				t.Fatalf("expected ErrInvalidBudgetRequestID for %q, got %v", v, err)
			}
		}
	})

	t.Run("approval patch keeps earlier approver", func(t *testing.T) {
		current := entities.BudgetRequest{ID: requestID, Status: entities.BudgetStatusReview, ApprovedByPreSale: preSaleID, Version: 2}
		p := buildApprovalPatch(approvalStages[entities.RoleFinancial], current, financeID, "")
		if p.ApprovedByPreSale != preSaleID || p.ApprovedByFinancial != financeID || p.Notes != nil || p.ExpectedVersion != 2 {
			t.Fatalf("unexpected patch: %+v", p)
		}
	})
}
