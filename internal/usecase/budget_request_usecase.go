package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"budget_service/internal/domain/budget"
	"budget_service/internal/domain/entities"
	"budget_service/internal/usecase/interfaces"
	"budget_service/pkg"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBudgetRequestID = pkg.InvalidArgument("invalid budget request id")
	ErrInvalidClientID        = pkg.InvalidArgument("invalid client id")
	ErrInvalidQuestionID      = pkg.InvalidArgument("invalid question id")
	ErrInvalidAlternativeID   = pkg.InvalidArgument("invalid alternative id")
	ErrInvalidAnswerID        = pkg.InvalidArgument("invalid response id")
	ErrInvalidUserID          = pkg.InvalidArgument("invalid user id")
	ErrNoAnswers              = pkg.InvalidArgument("at least one response is required")
	ErrTooManyAnswers         = pkg.InvalidArgument("too many responses")
	ErrDuplicateQuestion      = pkg.InvalidArgument("duplicate question")
	ErrDuplicateAlternative   = pkg.InvalidArgument("duplicate alternative")
	ErrEmptyAnswer            = pkg.InvalidArgument("alternative id or response details required")
	ErrAlternativeMismatch    = pkg.InvalidArgument("alternative does not belong to question")
	ErrNoAnswerUpdates        = pkg.InvalidArgument("at least one response update is required")
	ErrTooManyAnswerUpdates   = pkg.InvalidArgument("too many response updates")
	ErrEmptyAnswerUpdate      = pkg.InvalidArgument("it is necessary to inform valuePerHour or workHours")
	ErrNegativeContribution   = pkg.InvalidArgument("valuePerHour and workHours must not be negative")
	ErrDuplicateAnswerUpdate  = pkg.InvalidArgument("duplicate response")

	ErrAlreadyValidatedByPreSale   = pkg.InvalidArgument("already validated by pre sale")
	ErrAlreadyValidatedByFinancial = pkg.InvalidArgument("already validated by financial")
	ErrPreSaleApprovalRequired     = pkg.InvalidArgument("must be validated by pre sale first")
	ErrRoleNotAuthorized           = pkg.InvalidArgument("role not authorized to approve")
	ErrInvalidTransition           = pkg.InvalidArgument("status cannot move backwards")

	ErrBudgetRequestNotFound = pkg.NotFound("budget request not found")
	ErrNoBudgetRequestFound  = pkg.NotFound("no budget request found")
	ErrClientNotFound        = pkg.NotFound("client not found")
	ErrQuestionNotFound      = pkg.NotFound("question not found")
	ErrAnswerNotFound        = pkg.NotFound("response not found")
	ErrUserNotFound          = pkg.NotFound("user not found")
)

// MaxAnswersPerRequest bounds responses per budget request and updates per
// call. Each one is a separate write in the same store transaction as the
// request row.
const MaxAnswersPerRequest = 99

// AnswerInput is one client response as submitted.
type AnswerInput struct {
	QuestionID      string
	AlternativeID   string
	ResponseDetails string
}

type CreateBudgetRequestInput struct {
	ClientID string
	Answers  []AnswerInput
}

type ApproveBudgetRequestInput struct {
	BudgetRequestID string
	Notes           string
}

// AnswerUpdate overrides the contribution of an existing response.
// Nil fields are left untouched.
type AnswerUpdate struct {
	ID           string
	ValuePerHour *decimal.Decimal
	WorkHours    *float64
}

// IBudgetRequestUseCase exposes the budget workflow.
//
//   - POST /budget-requests           => CreateBudgetRequest()
//   - PATCH /budget-requests/approve  => ApproveBudgetRequest()
//   - GET /budget-requests            => FindAllBudgetRequests()
//   - GET /budget-requests/{id}       => FindBudgetRequestByID()
//   - PATCH /budget-requests/{id}     => UpdateBudgetRequest()
//   - DELETE /budget-requests/{id}    => DeleteBudgetRequestByID()
type IBudgetRequestUseCase interface {
	CreateBudgetRequest(ctx context.Context, in CreateBudgetRequestInput) (entities.BudgetRequest, error)
	ApproveBudgetRequest(ctx context.Context, userID string, in ApproveBudgetRequestInput) (entities.BudgetRequest, error)
	FindAllBudgetRequests(ctx context.Context, userID string) ([]entities.BudgetRequestSummary, error)
	FindBudgetRequestByID(ctx context.Context, id string) (entities.BudgetRequestDetails, error)
	UpdateBudgetRequest(ctx context.Context, id string, updates []AnswerUpdate) (entities.BudgetRequest, error)
	DeleteBudgetRequestByID(ctx context.Context, id string) error
}

type BudgetRequestUseCase struct {
	repo     interfaces.IBudgetRequestRepository
	catalog  interfaces.ICatalogGateway
	clients  interfaces.IClientGateway
	identity interfaces.IIdentityGateway
}

var _ IBudgetRequestUseCase = (*BudgetRequestUseCase)(nil)

func NewBudgetRequestUseCase(
	repo interfaces.IBudgetRequestRepository,
	catalog interfaces.ICatalogGateway,
	clients interfaces.IClientGateway,
	identity interfaces.IIdentityGateway,
) *BudgetRequestUseCase {
	return &BudgetRequestUseCase{repo: repo, catalog: catalog, clients: clients, identity: identity}
}

func (u *BudgetRequestUseCase) CreateBudgetRequest(ctx context.Context, in CreateBudgetRequestInput) (entities.BudgetRequest, error) {
	clientID, answers, err := validateCreateInput(in)
	if err != nil {
		return entities.BudgetRequest{}, err
	}

	exists, err := u.clients.ClientExists(ctx, clientID)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if !exists {
		return entities.BudgetRequest{}, fmt.Errorf("%w: %s", ErrClientNotFound, clientID)
	}

	linksPerAnswer := make([][]entities.AlternativeTeamLink, len(answers))
	for i, a := range answers {
		ok, err := u.catalog.QuestionExists(ctx, a.QuestionID)
		if err != nil {
			return entities.BudgetRequest{}, err
		}
		if !ok {
			return entities.BudgetRequest{}, fmt.Errorf("%w: %s", ErrQuestionNotFound, a.QuestionID)
		}
		if a.AlternativeID == "" {
			continue
		}
		belongs, err := u.catalog.AlternativeBelongsToQuestion(ctx, a.AlternativeID, a.QuestionID)
		if err != nil {
			return entities.BudgetRequest{}, err
		}
		if !belongs {
			return entities.BudgetRequest{}, fmt.Errorf("%w: alternative %s, question %s", ErrAlternativeMismatch, a.AlternativeID, a.QuestionID)
		}
		links, err := u.catalog.GetAlternativeTeamLinks(ctx, a.AlternativeID)
		if err != nil {
			return entities.BudgetRequest{}, err
		}
		linksPerAnswer[i] = links
	}

	totals := budget.CreationTotals(linksPerAnswer).Rounded()
	now := time.Now().UTC()
	br := entities.BudgetRequest{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		Status:     entities.BudgetStatusRequest,
		Amount:     totals.Amount,
		TotalHours: totals.TotalHours,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	records := make([]entities.AnswerRecord, len(answers))
	for i, a := range answers {
		r := entities.AnswerRecord{
			ID:              uuid.NewString(),
			BudgetRequestID: br.ID,
			QuestionID:      a.QuestionID,
			AlternativeID:   a.AlternativeID,
			ResponseDetails: a.ResponseDetails,
			CreatedAt:       now,
		}
		if c := budget.AnswerContribution(linksPerAnswer[i]); c.HasTeams {
			r.ValuePerHour = &c.ValuePerHour
			r.WorkHours = &c.WorkHours
		}
		records[i] = r
	}

	var created entities.BudgetRequest
	err = u.repo.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		var err error
		created, err = tx.CreateBudgetRequest(ctx, br)
		if err != nil {
			return err
		}
		return tx.CreateAnswerRecords(ctx, records)
	})
	if err != nil {
		return entities.BudgetRequest{}, err
	}

	log.Printf("[budget][usecase] created budget_request_id=%s client_id=%s amount=%s total_hours=%v responses=%d",
		created.ID, created.ClientID, created.Amount.StringFixed(budget.AmountPlaces), created.TotalHours, len(records))
	return created, nil
}

// validateCreateInput returns the client id and answers with ids in
// canonical form and text fields trimmed.
func validateCreateInput(in CreateBudgetRequestInput) (string, []AnswerInput, error) {
	clientID, err := canonicalID(in.ClientID, ErrInvalidClientID)
	if err != nil {
		return "", nil, err
	}
	if len(in.Answers) == 0 {
		return "", nil, ErrNoAnswers
	}
	if len(in.Answers) > MaxAnswersPerRequest {
		return "", nil, fmt.Errorf("%w: at most %d, got %d", ErrTooManyAnswers, MaxAnswersPerRequest, len(in.Answers))
	}

	answers := make([]AnswerInput, len(in.Answers))
	questionIDs := make([]string, 0, len(in.Answers))
	alternativeIDs := make([]string, 0, len(in.Answers))
	for i, a := range in.Answers {
		questionID, err := canonicalID(a.QuestionID, ErrInvalidQuestionID)
		if err != nil {
			return "", nil, err
		}
		questionIDs = append(questionIDs, questionID)

		alternativeID := normalize(a.AlternativeID)
		if alternativeID != "" {
			if alternativeID, err = canonicalID(alternativeID, ErrInvalidAlternativeID); err != nil {
				return "", nil, err
			}
			alternativeIDs = append(alternativeIDs, alternativeID)
		}
		answers[i] = AnswerInput{
			QuestionID:      questionID,
			AlternativeID:   alternativeID,
			ResponseDetails: normalize(a.ResponseDetails),
		}
	}
	if err := checkHasDuplicates(questionIDs, ErrDuplicateQuestion); err != nil {
		return "", nil, err
	}
	if err := checkHasDuplicates(alternativeIDs, ErrDuplicateAlternative); err != nil {
		return "", nil, err
	}

	for _, a := range answers {
		if a.AlternativeID == "" && a.ResponseDetails == "" {
			return "", nil, fmt.Errorf("%w: question %s", ErrEmptyAnswer, a.QuestionID)
		}
	}
	return clientID, answers, nil
}

func (u *BudgetRequestUseCase) ApproveBudgetRequest(ctx context.Context, userID string, in ApproveBudgetRequestInput) (entities.BudgetRequest, error) {
	userID, err := canonicalID(userID, ErrInvalidUserID)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	id, err := canonicalID(in.BudgetRequestID, ErrInvalidBudgetRequestID)
	if err != nil {
		return entities.BudgetRequest{}, err
	}

	var updated entities.BudgetRequest
	err = u.repo.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		current, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return fmt.Errorf("%w: %s", ErrBudgetRequestNotFound, id)
		}

		role, err := u.resolveRole(ctx, userID)
		if err != nil {
			return err
		}
		stage, ok := approvalStages[role]
		if !ok {
			return fmt.Errorf("%w: %s", ErrRoleNotAuthorized, role)
		}
		if err := stage.check(current); err != nil {
			return err
		}
		if !current.Status.CanAdvanceTo(stage.next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, stage.next)
		}

		patch := buildApprovalPatch(stage, current, userID, normalize(in.Notes))
		if err := tx.UpdateStatusAndApprover(ctx, id, patch); err != nil {
			return err
		}
		updated = applyApproval(current, patch)
		return nil
	})
	if err != nil {
		return entities.BudgetRequest{}, err
	}

	log.Printf("[budget][usecase] approved budget_request_id=%s user_id=%s status=%s", updated.ID, userID, updated.Status)
	return updated, nil
}

func applyApproval(br entities.BudgetRequest, p entities.ApprovalPatch) entities.BudgetRequest {
	br.Status = p.Status
	br.ApprovedByPreSale = p.ApprovedByPreSale
	br.ApprovedByFinancial = p.ApprovedByFinancial
	if p.Notes != nil {
		br.Notes = *p.Notes
	}
	br.Version = p.ExpectedVersion + 1
	br.UpdatedAt = time.Now().UTC()
	return br
}

func (u *BudgetRequestUseCase) resolveRole(ctx context.Context, userID string) (entities.Role, error) {
	name, err := u.identity.GetUserRole(ctx, userID)
	if err != nil {
		return entities.RoleUnknown, err
	}
	if name == "" {
		return entities.RoleUnknown, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return entities.ParseRole(name), nil
}

func (u *BudgetRequestUseCase) FindAllBudgetRequests(ctx context.Context, userID string) ([]entities.BudgetRequestSummary, error) {
	userID, err := canonicalID(userID, ErrInvalidUserID)
	if err != nil {
		return nil, err
	}
	role, err := u.resolveRole(ctx, userID)
	if err != nil {
		return nil, err
	}
	status, ok := visibleStatus[role]
	if !ok {
		return nil, ErrNoBudgetRequestFound
	}

	items, err := u.repo.FindAllByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoBudgetRequestFound
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })

	clients := make(map[string]entities.Client)
	out := make([]entities.BudgetRequestSummary, 0, len(items))
	for _, br := range items {
		c, ok := clients[br.ClientID]
		if !ok {
			c, err = u.clients.FindClient(ctx, br.ClientID)
			if err != nil {
				return nil, err
			}
			clients[br.ClientID] = c
		}
		out = append(out, entities.BudgetRequestSummary{BudgetRequest: br, Client: c})
	}
	return out, nil
}

func (u *BudgetRequestUseCase) FindBudgetRequestByID(ctx context.Context, id string) (entities.BudgetRequestDetails, error) {
	id, err := canonicalID(id, ErrInvalidBudgetRequestID)
	if err != nil {
		return entities.BudgetRequestDetails{}, err
	}

	br, err := u.repo.FindByIDWithAnswers(ctx, id)
	if err != nil {
		return entities.BudgetRequestDetails{}, err
	}
	if br.ID == "" {
		return entities.BudgetRequestDetails{}, fmt.Errorf("%w: %s", ErrBudgetRequestNotFound, id)
	}

	client, err := u.clients.FindClient(ctx, br.ClientID)
	if err != nil {
		return entities.BudgetRequestDetails{}, err
	}

	details := entities.BudgetRequestDetails{
		BudgetRequest: br.BudgetRequest,
		Client:        client,
		Responses:     make([]entities.AnswerDetails, 0, len(br.Answers)),
	}
	for _, a := range br.Answers {
		d := entities.AnswerDetails{AnswerRecord: a}
		q, err := u.catalog.FindQuestion(ctx, a.QuestionID)
		if err != nil {
			return entities.BudgetRequestDetails{}, err
		}
		if q.ID != "" {
			d.Question = &q
		}
		if a.AlternativeID != "" {
			alt, err := u.catalog.FindAlternative(ctx, a.AlternativeID)
			if err != nil {
				return entities.BudgetRequestDetails{}, err
			}
			if alt.ID != "" {
				d.Alternative = &alt
			}
		}
		details.Responses = append(details.Responses, d)
	}
	return details, nil
}

func (u *BudgetRequestUseCase) UpdateBudgetRequest(ctx context.Context, id string, updates []AnswerUpdate) (entities.BudgetRequest, error) {
	id, err := canonicalID(id, ErrInvalidBudgetRequestID)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if len(updates) == 0 {
		return entities.BudgetRequest{}, ErrNoAnswerUpdates
	}
	if len(updates) > MaxAnswersPerRequest {
		return entities.BudgetRequest{}, fmt.Errorf("%w: at most %d, got %d", ErrTooManyAnswerUpdates, MaxAnswersPerRequest, len(updates))
	}
	ups := make([]AnswerUpdate, len(updates))
	ids := make([]string, len(updates))
	for i, up := range updates {
		if up, err = validateAnswerUpdate(up); err != nil {
			return entities.BudgetRequest{}, err
		}
		ups[i] = up
		ids[i] = up.ID
	}
	if err := checkHasDuplicates(ids, ErrDuplicateAnswerUpdate); err != nil {
		return entities.BudgetRequest{}, err
	}

	var updated entities.BudgetRequest
	err = u.repo.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		current, err := tx.FindByIDWithAnswers(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return fmt.Errorf("%w: %s", ErrBudgetRequestNotFound, id)
		}

		index := make(map[string]int, len(current.Answers))
		for i, a := range current.Answers {
			index[a.ID] = i
		}
		for _, up := range ups {
			i, ok := index[up.ID]
			if !ok {
				return fmt.Errorf("%w: %s not found to update", ErrAnswerNotFound, up.ID)
			}
			patch := entities.AnswerPatch{ValuePerHour: up.ValuePerHour, WorkHours: up.WorkHours}
			if err := tx.UpdateAnswer(ctx, id, up.ID, patch); err != nil {
				return err
			}
			current.Answers[i] = applyAnswerPatch(current.Answers[i], patch)
		}

		totals := budget.RecomputeTotals(current.Answers).Rounded()
		patch := entities.TotalsPatch{
			ExpectedVersion: current.Version,
			Amount:          totals.Amount,
			TotalHours:      totals.TotalHours,
		}
		if err := tx.UpdateTotals(ctx, id, patch); err != nil {
			return err
		}

		updated = current.BudgetRequest
		updated.Amount = totals.Amount
		updated.TotalHours = totals.TotalHours
		updated.Version = current.Version + 1
		updated.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return entities.BudgetRequest{}, err
	}

	log.Printf("[budget][usecase] updated budget_request_id=%s amount=%s total_hours=%v responses=%d",
		updated.ID, updated.Amount.StringFixed(budget.AmountPlaces), updated.TotalHours, len(updates))
	return updated, nil
}

func validateAnswerUpdate(up AnswerUpdate) (AnswerUpdate, error) {
	id, err := canonicalID(up.ID, ErrInvalidAnswerID)
	if err != nil {
		return AnswerUpdate{}, err
	}
	up.ID = id
	if up.ValuePerHour == nil && up.WorkHours == nil {
		return AnswerUpdate{}, fmt.Errorf("%w: response %s", ErrEmptyAnswerUpdate, up.ID)
	}
	if (up.ValuePerHour != nil && up.ValuePerHour.IsNegative()) || (up.WorkHours != nil && *up.WorkHours < 0) {
		return AnswerUpdate{}, fmt.Errorf("%w: response %s", ErrNegativeContribution, up.ID)
	}
	return up, nil
}

func applyAnswerPatch(a entities.AnswerRecord, p entities.AnswerPatch) entities.AnswerRecord {
	if p.ValuePerHour != nil {
		v := *p.ValuePerHour
		a.ValuePerHour = &v
	}
	if p.WorkHours != nil {
		h := *p.WorkHours
		a.WorkHours = &h
	}
	return a
}

func (u *BudgetRequestUseCase) DeleteBudgetRequestByID(ctx context.Context, id string) error {
	id, err := canonicalID(id, ErrInvalidBudgetRequestID)
	if err != nil {
		return err
	}

	err = u.repo.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		current, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return fmt.Errorf("%w: %s", ErrBudgetRequestNotFound, id)
		}
		return tx.DeleteByID(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Printf("[budget][usecase] deleted budget_request_id=%s", id)
	return nil
}
