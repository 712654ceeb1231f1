package repository

import (
	"context"
	"time"

	"budget_service/internal/domain/entities"
	"budget_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	DefaultBudgetRequestsTable  = "budget_requests"
	DefaultClientResponsesTable = "client_responses"

	budgetRequestsStatusIndex = "status-index"
)

// DynamoAPI is the subset of *dynamodb.Client used by the store.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type Tables struct {
	BudgetRequests  string
	ClientResponses string
}

type budgetRequestItem struct {
	ID                  string  `dynamodbav:"id"`
	ClientID            string  `dynamodbav:"client_id"`
	Status              string  `dynamodbav:"status"`
	Amount              string  `dynamodbav:"amount"`
	TotalHours          float64 `dynamodbav:"total_hours"`
	ApprovedByPreSale   string  `dynamodbav:"approved_by_pre_sale,omitempty"`
	ApprovedByFinancial string  `dynamodbav:"approved_by_financial,omitempty"`
	Notes               string  `dynamodbav:"notes,omitempty"`
	Version             int     `dynamodbav:"version"`
	CreatedAt           string  `dynamodbav:"created_at"`
	UpdatedAt           string  `dynamodbav:"updated_at"`
}

type clientResponseItem struct {
	ID              string   `dynamodbav:"id"`
	BudgetRequestID string   `dynamodbav:"budget_request_id"`
	QuestionID      string   `dynamodbav:"question_id"`
	AlternativeID   string   `dynamodbav:"alternative_id,omitempty"`
	ResponseDetails string   `dynamodbav:"response_details,omitempty"`
	ValuePerHour    string   `dynamodbav:"value_per_hour,omitempty"`
	WorkHours       *float64 `dynamodbav:"work_hours,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
}

// BudgetRequestDynamoRepository persists budget requests and their client
// responses in two DynamoDB tables.
//
// Table requirements:
//   - budget_requests: PK id (string), GSI status-index (PK: status)
//   - client_responses: PK budget_request_id (string), SK id (string)
//
// Responses share their request's partition so the workflow reads them with
// ConsistentRead. FindAllByStatus reads the status GSI and may lag writes.
//
// Every write goes through a unit of work committed with TransactWriteItems.
type BudgetRequestDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IBudgetRequestRepository = (*BudgetRequestDynamoRepository)(nil)

func NewBudgetRequestDynamoRepository(ddb DynamoAPI, tables Tables) *BudgetRequestDynamoRepository {
	if tables.BudgetRequests == "" {
		tables.BudgetRequests = DefaultBudgetRequestsTable
	}
	if tables.ClientResponses == "" {
		tables.ClientResponses = DefaultClientResponsesTable
	}
	return &BudgetRequestDynamoRepository{ddb: ddb, tables: tables}
}

func (r *BudgetRequestDynamoRepository) WithinTx(ctx context.Context, fn func(tx interfaces.IBudgetRequestStore) error) error {
	tx := &budgetRequestTx{repo: r}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit(ctx)
}

func (r *BudgetRequestDynamoRepository) CreateBudgetRequest(ctx context.Context, br entities.BudgetRequest) (entities.BudgetRequest, error) {
	var created entities.BudgetRequest
	err := r.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		var err error
		created, err = tx.CreateBudgetRequest(ctx, br)
		return err
	})
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	return created, nil
}

func (r *BudgetRequestDynamoRepository) CreateAnswerRecords(ctx context.Context, answers []entities.AnswerRecord) error {
	return r.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		return tx.CreateAnswerRecords(ctx, answers)
	})
}

func (r *BudgetRequestDynamoRepository) UpdateStatusAndApprover(ctx context.Context, id string, patch entities.ApprovalPatch) error {
	return r.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		return tx.UpdateStatusAndApprover(ctx, id, patch)
	})
}

func (r *BudgetRequestDynamoRepository) UpdateAnswer(ctx context.Context, budgetRequestID, id string, patch entities.AnswerPatch) error {
	return r.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		return tx.UpdateAnswer(ctx, budgetRequestID, id, patch)
	})
}

func (r *BudgetRequestDynamoRepository) UpdateTotals(ctx context.Context, id string, patch entities.TotalsPatch) error {
	return r.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		return tx.UpdateTotals(ctx, id, patch)
	})
}

func (r *BudgetRequestDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	return r.WithinTx(ctx, func(tx interfaces.IBudgetRequestStore) error {
		return tx.DeleteByID(ctx, id)
	})
}

func (r *BudgetRequestDynamoRepository) FindByID(ctx context.Context, id string) (entities.BudgetRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.BudgetRequests),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetRequest{}, nil
	}

	var it budgetRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetRequest{}, err
	}
	return fromBudgetRequestItem(it), nil
}

func (r *BudgetRequestDynamoRepository) FindByIDWithAnswers(ctx context.Context, id string) (entities.BudgetRequestWithAnswers, error) {
	br, err := r.FindByID(ctx, id)
	if err != nil {
		return entities.BudgetRequestWithAnswers{}, err
	}
	if br.ID == "" {
		return entities.BudgetRequestWithAnswers{}, nil
	}

	answers, err := r.listAnswers(ctx, id)
	if err != nil {
		return entities.BudgetRequestWithAnswers{}, err
	}
	return entities.BudgetRequestWithAnswers{BudgetRequest: br, Answers: answers}, nil
}

func (r *BudgetRequestDynamoRepository) FindAllByStatus(ctx context.Context, status entities.BudgetStatus) ([]entities.BudgetRequest, error) {
	items, err := r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.BudgetRequests),
		IndexName:              aws.String(budgetRequestsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	var its []budgetRequestItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.BudgetRequest, 0, len(its))
	for _, it := range its {
		out = append(out, fromBudgetRequestItem(it))
	}
	return out, nil
}

func (r *BudgetRequestDynamoRepository) listAnswers(ctx context.Context, budgetRequestID string) ([]entities.AnswerRecord, error) {
	items, err := r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.ClientResponses),
		KeyConditionExpression: aws.String("#bid = :bid"),
		ConsistentRead:         aws.Bool(true),
		ExpressionAttributeNames: map[string]string{
			"#bid": "budget_request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetRequestID},
		},
	})
	if err != nil {
		return nil, err
	}

	var its []clientResponseItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.AnswerRecord, 0, len(its))
	for _, it := range its {
		out = append(out, fromClientResponseItem(it))
	}
	sortAnswers(out)
	return out, nil
}

func (r *BudgetRequestDynamoRepository) queryAll(ctx context.Context, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func toBudgetRequestItem(br entities.BudgetRequest) budgetRequestItem {
	return budgetRequestItem{
		ID:                  br.ID,
		ClientID:            br.ClientID,
		Status:              string(br.Status),
		Amount:              br.Amount.String(),
		TotalHours:          br.TotalHours,
		ApprovedByPreSale:   br.ApprovedByPreSale,
		ApprovedByFinancial: br.ApprovedByFinancial,
		Notes:               br.Notes,
		Version:             br.Version,
		CreatedAt:           formatTime(br.CreatedAt),
		UpdatedAt:           formatTime(br.UpdatedAt),
	}
}

func fromBudgetRequestItem(it budgetRequestItem) entities.BudgetRequest {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.BudgetRequest{
		ID:                  it.ID,
		ClientID:            it.ClientID,
		Status:              entities.BudgetStatus(it.Status),
		Amount:              amount,
		TotalHours:          it.TotalHours,
		ApprovedByPreSale:   it.ApprovedByPreSale,
		ApprovedByFinancial: it.ApprovedByFinancial,
		Notes:               it.Notes,
		Version:             it.Version,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}

func toClientResponseItem(a entities.AnswerRecord) clientResponseItem {
	it := clientResponseItem{
		ID:              a.ID,
		BudgetRequestID: a.BudgetRequestID,
		QuestionID:      a.QuestionID,
		AlternativeID:   a.AlternativeID,
		ResponseDetails: a.ResponseDetails,
		WorkHours:       a.WorkHours,
		CreatedAt:       formatTime(a.CreatedAt),
	}
	if a.ValuePerHour != nil {
		it.ValuePerHour = a.ValuePerHour.String()
	}
	return it
}

func fromClientResponseItem(it clientResponseItem) entities.AnswerRecord {
	a := entities.AnswerRecord{
		ID:              it.ID,
		BudgetRequestID: it.BudgetRequestID,
		QuestionID:      it.QuestionID,
		AlternativeID:   it.AlternativeID,
		ResponseDetails: it.ResponseDetails,
		WorkHours:       it.WorkHours,
		CreatedAt:       parseTime(it.CreatedAt),
	}
	if it.ValuePerHour != "" {
		if v, err := decimal.NewFromString(it.ValuePerHour); err == nil {
			a.ValuePerHour = &v
		}
	}
	return a
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
