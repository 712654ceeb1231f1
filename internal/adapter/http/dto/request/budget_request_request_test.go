package request

import (
	"encoding/json"
	"testing"
)

func TestCreateBudgetRequestRequest_ToInput(t *testing.T) {
	r := CreateBudgetRequestRequest{
		ClientID: "c-1",
		Responses: []ResponseRequest{
			{QuestionID: "q-1", AlternativeID: "a-1"},
			{QuestionID: "q-2", ResponseDetails: "only on weekends"},
		},
	}

	in := r.ToInput()
	if in.ClientID != "c-1" || len(in.Answers) != 2 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Answers[0].AlternativeID != "a-1" || in.Answers[1].ResponseDetails != "only on weekends" {
		t.Fatalf("unexpected answers: %+v", in.Answers)
	}

	empty := CreateBudgetRequestRequest{ClientID: "c-1"}.ToInput()
	if empty.Answers == nil || len(empty.Answers) != 0 {
		t.Fatalf("expected empty non-nil answers, got %#v", empty.Answers)
	}
}

func TestApproveBudgetRequestRequest_ToInput(t *testing.T) {
	in := ApproveBudgetRequestRequest{BudgetRequestID: "br-1", Notes: "ok"}.ToInput()
	if in.BudgetRequestID != "br-1" || in.Notes != "ok" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestUpdateBudgetRequestRequest_ToUpdates(t *testing.T) {
	var r UpdateBudgetRequestRequest
	body := `{"formResponses":[{"id":"r-1","valuePerHour":"45.50"},{"id":"r-2","workHours":3.5},{"id":"r-3","valuePerHour":12}]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ups := r.ToUpdates()
	if len(ups) != 3 {
		t.Fatalf("expected 3 updates, got %d", len(ups))
	}
	if ups[0].ValuePerHour == nil || ups[0].ValuePerHour.String() != "45.5" || ups[0].WorkHours != nil {
		t.Fatalf("unexpected first update: %+v", ups[0])
	}
	if ups[1].ValuePerHour != nil || ups[1].WorkHours == nil || *ups[1].WorkHours != 3.5 {
		t.Fatalf("unexpected second update: %+v", ups[1])
	}
	if ups[2].ValuePerHour == nil || ups[2].ValuePerHour.String() != "12" {
		t.Fatalf("unexpected third update: %+v", ups[2])
	}
}
