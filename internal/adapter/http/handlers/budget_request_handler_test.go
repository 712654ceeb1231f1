package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget_service/internal/adapter/http/handlers/mocks"
	"budget_service/internal/domain/entities"
	"budget_service/internal/infrastructure/metrics"
	"budget_service/internal/usecase"
	"budget_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	uc      *mocks.MockIBudgetRequestUseCase
	metrics *metrics.Metrics
	router  *gin.Engine
}

func newHandlerFixture(t *testing.T) handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := handlerFixture{
		uc:      mocks.NewMockIBudgetRequestUseCase(ctrl),
		metrics: metrics.New(),
		router:  gin.New(),
	}
	h := NewBudgetRequestHandler(f.uc, f.metrics)
	g := f.router.Group("/v1/budget-requests")
	g.POST("", h.CreateBudgetRequest)
	g.GET("", h.FindAllBudgetRequests)
	g.PATCH("/approve", h.ApproveBudgetRequest)
	g.GET("/:id", h.FindBudgetRequestByID)
	g.PATCH("/:id", h.UpdateBudgetRequest)
	g.DELETE("/:id", h.DeleteBudgetRequest)
	return f
}

func (f handlerFixture) do(method, path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestBudgetRequestHandler_CreateBudgetRequest(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(http.MethodPost, "/v1/budget-requests", "{", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client id", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(http.MethodPost, "/v1/budget-requests", `{"responses":[{"questionId":"q-1"}]}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().CreateBudgetRequest(gomock.Any(), gomock.Any()).
			Return(entities.BudgetRequest{}, fmt.Errorf("%w: q-1", usecase.ErrDuplicateQuestion))

		w := f.do(http.MethodPost, "/v1/budget-requests", `{"clientId":"c-1","responses":[{"questionId":"q-1","alternativeId":"a-1"},{"questionId":"q-1","alternativeId":"a-2"}]}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "INVALID_REQUEST" || body["message"] != "duplicate question: q-1" {
			t.Fatalf("unexpected body: %v", body)
		}
		if got := testutil.ToFloat64(f.metrics.BudgetRequestsCreated); got != 0 {
			t.Fatalf("expected no created metric, got %v", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		want := usecase.CreateBudgetRequestInput{
			ClientID: "c-1",
			Answers: []usecase.AnswerInput{
				{QuestionID: "q-1", AlternativeID: "a-1"},
				{QuestionID: "q-2", ResponseDetails: "weekends"},
			},
		}
		now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
		f.uc.EXPECT().CreateBudgetRequest(gomock.Any(), want).Return(entities.BudgetRequest{
			ID:         "br-1",
			ClientID:   "c-1",
			Status:     entities.BudgetStatusRequest,
			Amount:     decimal.RequireFromString("130"),
			TotalHours: 3,
			Version:    1,
			CreatedAt:  now,
			UpdatedAt:  now,
		}, nil)

		w := f.do(http.MethodPost, "/v1/budget-requests", `{"clientId":"c-1","responses":[{"questionId":"q-1","alternativeId":"a-1"},{"questionId":"q-2","responseDetails":"weekends"}]}`, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "br-1" || body["amount"] != "130.00" || body["status"] != "request" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["createdAt"] != "05/03/2024 10:00" {
			t.Fatalf("unexpected createdAt: %v", body["createdAt"])
		}
		if got := testutil.ToFloat64(f.metrics.BudgetRequestsCreated); got != 1 {
			t.Fatalf("expected created metric 1, got %v", got)
		}
	})
}

func TestBudgetRequestHandler_ApproveBudgetRequest(t *testing.T) {
	t.Run("missing caller", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(http.MethodPatch, "/v1/budget-requests/approve", `{"budgetRequestId":"br-1"}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing budget request id", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(http.MethodPatch, "/v1/budget-requests/approve", `{"notes":"ok"}`, "u-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", usecase.ErrBudgetRequestNotFound, http.StatusNotFound, "BUDGET_REQUEST_NOT_FOUND"},
		{"user not found", usecase.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"already validated", usecase.ErrAlreadyValidatedByPreSale, http.StatusBadRequest, "INVALID_REQUEST"},
		{"role not authorized", usecase.ErrRoleNotAuthorized, http.StatusBadRequest, "ROLE_NOT_AUTHORIZED"},
		{"concurrent write", pkg.Conflict("budget request was modified concurrently"), http.StatusConflict, "CONFLICT"},
		{"store failure", errors.New("dynamo down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.uc.EXPECT().ApproveBudgetRequest(gomock.Any(), "u-1", usecase.ApproveBudgetRequestInput{BudgetRequestID: "br-1"}).
				Return(entities.BudgetRequest{}, tc.err)

			w := f.do(http.MethodPatch, "/v1/budget-requests/approve", `{"budgetRequestId":"br-1"}`, "u-1")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if body := decodeBody(t, w); body["code"] != tc.body {
				t.Fatalf("expected code %s, got %v", tc.body, body)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().ApproveBudgetRequest(gomock.Any(), "u-1", usecase.ApproveBudgetRequestInput{BudgetRequestID: "br-1", Notes: "looks right"}).
			Return(entities.BudgetRequest{ID: "br-1", Status: entities.BudgetStatusReview, ApprovedByPreSale: "u-1", Notes: "looks right"}, nil)

		w := f.do(http.MethodPatch, "/v1/budget-requests/approve", `{"budgetRequestId":"br-1","notes":"looks right"}`, "u-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "review" || body["approvedByPreSale"] != "u-1" {
			t.Fatalf("unexpected body: %v", body)
		}
		if got := testutil.ToFloat64(f.metrics.Approvals.WithLabelValues("review")); got != 1 {
			t.Fatalf("expected approval metric 1, got %v", got)
		}
	})
}

func TestBudgetRequestHandler_FindAllBudgetRequests(t *testing.T) {
	t.Run("missing caller", func(t *testing.T) {
		f := newHandlerFixture(t)
		if w := f.do(http.MethodGet, "/v1/budget-requests", "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("none visible", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().FindAllBudgetRequests(gomock.Any(), "u-1").Return(nil, usecase.ErrNoBudgetRequestFound)
		if w := f.do(http.MethodGet, "/v1/budget-requests", "", "u-1"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().FindAllBudgetRequests(gomock.Any(), "u-1").Return([]entities.BudgetRequestSummary{
			{BudgetRequest: entities.BudgetRequest{ID: "br-1", Status: entities.BudgetStatusRequest}, Client: entities.Client{ID: "c-1", CompanyName: "ACME"}},
			{BudgetRequest: entities.BudgetRequest{ID: "br-2", Status: entities.BudgetStatusRequest}, Client: entities.Client{ID: "c-1", CompanyName: "ACME"}},
		}, nil)

		w := f.do(http.MethodGet, "/v1/budget-requests", "", "u-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 || body[1]["id"] != "br-2" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBudgetRequestHandler_FindBudgetRequestByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().FindBudgetRequestByID(gomock.Any(), "nope").Return(entities.BudgetRequestDetails{}, usecase.ErrInvalidBudgetRequestID)
		if w := f.do(http.MethodGet, "/v1/budget-requests/nope", "", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().FindBudgetRequestByID(gomock.Any(), "br-1").Return(entities.BudgetRequestDetails{
			BudgetRequest: entities.BudgetRequest{ID: "br-1", Amount: decimal.RequireFromString("12.5")},
			Client:        entities.Client{ID: "c-1", CompanyName: "ACME"},
			Responses: []entities.AnswerDetails{{
				AnswerRecord: entities.AnswerRecord{ID: "r-1", ResponseDetails: "weekends"},
				Question:     &entities.Question{ID: "q-1", Description: "Schedule?"},
			}},
		}, nil)

		w := f.do(http.MethodGet, "/v1/budget-requests/br-1", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["amount"] != "12.50" {
			t.Fatalf("unexpected amount: %v", body["amount"])
		}
		responses, _ := body["formResponses"].([]any)
		if len(responses) != 1 {
			t.Fatalf("unexpected responses: %v", body["formResponses"])
		}
	})
}

func TestBudgetRequestHandler_UpdateBudgetRequest(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		f := newHandlerFixture(t)
		if w := f.do(http.MethodPatch, "/v1/budget-requests/br-1", "{", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().UpdateBudgetRequest(gomock.Any(), "br-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ups []usecase.AnswerUpdate) (entities.BudgetRequest, error) {
				if len(ups) != 2 || ups[0].ID != "r-1" || ups[0].ValuePerHour.String() != "45.5" || ups[1].WorkHours == nil || *ups[1].WorkHours != 4 {
					t.Fatalf("unexpected updates: %+v", ups)
				}
				return entities.BudgetRequest{ID: "br-1", Amount: decimal.RequireFromString("420.01")}, nil
			})

		w := f.do(http.MethodPatch, "/v1/budget-requests/br-1", `{"formResponses":[{"id":"r-1","valuePerHour":45.5},{"id":"r-2","workHours":4}]}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["amount"] != "420.01" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("answer not found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().UpdateBudgetRequest(gomock.Any(), "br-1", gomock.Any()).
			Return(entities.BudgetRequest{}, fmt.Errorf("%w: r-9", usecase.ErrAnswerNotFound))

		w := f.do(http.MethodPatch, "/v1/budget-requests/br-1", `{"formResponses":[{"id":"r-9","workHours":1}]}`, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "response not found: r-9" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBudgetRequestHandler_DeleteBudgetRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().DeleteBudgetRequestByID(gomock.Any(), "br-1").Return(nil)
		if w := f.do(http.MethodDelete, "/v1/budget-requests/br-1", "", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.uc.EXPECT().DeleteBudgetRequestByID(gomock.Any(), "br-1").Return(usecase.ErrBudgetRequestNotFound)
		if w := f.do(http.MethodDelete, "/v1/budget-requests/br-1", "", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapBudgetRequestError(t *testing.T) {
	internal := mapBudgetRequestError(errors.New("boom"))
	if internal.HTTPStatus != http.StatusInternalServerError || internal.Message != "An internal error occurred" {
		t.Fatalf("unexpected internal mapping: %+v", internal)
	}
	wrapped := mapBudgetRequestError(fmt.Errorf("approve: %w", usecase.ErrPreSaleApprovalRequired))
	if wrapped.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrapped invalid argument, got %d", wrapped.HTTPStatus)
	}
}
