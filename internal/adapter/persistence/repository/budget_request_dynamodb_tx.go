package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"budget_service/internal/domain/entities"
	"budget_service/internal/usecase/interfaces"
	"budget_service/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MaxTransactItems is the DynamoDB limit of actions per TransactWriteItems call.
const MaxTransactItems = 100

// budgetRequestTx buffers writes and commits them in one TransactWriteItems call.
// Reads go straight to the tables and do not see buffered writes.
type budgetRequestTx struct {
	repo  *BudgetRequestDynamoRepository
	items []types.TransactWriteItem
}

var _ interfaces.IBudgetRequestStore = (*budgetRequestTx)(nil)

func (tx *budgetRequestTx) CreateBudgetRequest(_ context.Context, br entities.BudgetRequest) (entities.BudgetRequest, error) {
	av, err := attributevalue.MarshalMap(toBudgetRequestItem(br))
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	tx.items = append(tx.items, types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(tx.repo.tables.BudgetRequests),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}})
	return br, nil
}

func (tx *budgetRequestTx) CreateAnswerRecords(_ context.Context, answers []entities.AnswerRecord) error {
	for _, a := range answers {
		av, err := attributevalue.MarshalMap(toClientResponseItem(a))
		if err != nil {
			return err
		}
		tx.items = append(tx.items, types.TransactWriteItem{Put: &types.Put{
			TableName:           aws.String(tx.repo.tables.ClientResponses),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		}})
	}
	return nil
}

func (tx *budgetRequestTx) UpdateStatusAndApprover(_ context.Context, id string, patch entities.ApprovalPatch) error {
	set := newUpdateSet()
	set.add("status", &types.AttributeValueMemberS{Value: string(patch.Status)})
	if patch.ApprovedByPreSale != "" {
		set.add("approved_by_pre_sale", &types.AttributeValueMemberS{Value: patch.ApprovedByPreSale})
	}
	if patch.ApprovedByFinancial != "" {
		set.add("approved_by_financial", &types.AttributeValueMemberS{Value: patch.ApprovedByFinancial})
	}
	if patch.Notes != nil {
		set.add("notes", &types.AttributeValueMemberS{Value: *patch.Notes})
	}
	tx.updateVersioned(id, patch.ExpectedVersion, set)
	return nil
}

func (tx *budgetRequestTx) UpdateAnswer(_ context.Context, budgetRequestID, id string, patch entities.AnswerPatch) error {
	set := newUpdateSet()
	if patch.ValuePerHour != nil {
		set.add("value_per_hour", &types.AttributeValueMemberS{Value: patch.ValuePerHour.String()})
	}
	if patch.WorkHours != nil {
		set.add("work_hours", &types.AttributeValueMemberN{Value: floatToString(*patch.WorkHours)})
	}
	if set.empty() {
		return nil
	}
	set.names["#id"] = "id"
	tx.items = append(tx.items, types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(tx.repo.tables.ClientResponses),
		Key:                       responseKey(budgetRequestID, id),
		UpdateExpression:          aws.String(set.expression()),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  set.names,
		ExpressionAttributeValues: set.values,
	}})
	return nil
}

func (tx *budgetRequestTx) UpdateTotals(_ context.Context, id string, patch entities.TotalsPatch) error {
	set := newUpdateSet()
	set.add("amount", &types.AttributeValueMemberS{Value: patch.Amount.String()})
	set.add("total_hours", &types.AttributeValueMemberN{Value: floatToString(patch.TotalHours)})
	tx.updateVersioned(id, patch.ExpectedVersion, set)
	return nil
}

// DeleteByID reads the request's responses now, consistently, and deletes them
// together with the request.
func (tx *budgetRequestTx) DeleteByID(ctx context.Context, id string) error {
	answers, err := tx.repo.listAnswers(ctx, id)
	if err != nil {
		return err
	}
	for _, a := range answers {
		tx.items = append(tx.items, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(tx.repo.tables.ClientResponses),
			Key:       responseKey(id, a.ID),
		}})
	}
	tx.items = append(tx.items, types.TransactWriteItem{Delete: &types.Delete{
		TableName:           aws.String(tx.repo.tables.BudgetRequests),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}})
	return nil
}

func (tx *budgetRequestTx) FindByID(ctx context.Context, id string) (entities.BudgetRequest, error) {
	return tx.repo.FindByID(ctx, id)
}

func (tx *budgetRequestTx) FindByIDWithAnswers(ctx context.Context, id string) (entities.BudgetRequestWithAnswers, error) {
	return tx.repo.FindByIDWithAnswers(ctx, id)
}

func (tx *budgetRequestTx) FindAllByStatus(ctx context.Context, status entities.BudgetStatus) ([]entities.BudgetRequest, error) {
	return tx.repo.FindAllByStatus(ctx, status)
}

// updateVersioned bumps version and updated_at, guarded by the version the caller read.
func (tx *budgetRequestTx) updateVersioned(id string, expectedVersion int, set *updateSet) {
	set.add("updated_at", &types.AttributeValueMemberS{Value: formatTime(time.Now())})
	set.names["#version"] = "version"
	set.values[":expected_version"] = &types.AttributeValueMemberN{Value: strconv.Itoa(expectedVersion)}
	set.values[":one"] = &types.AttributeValueMemberN{Value: "1"}
	expr := set.expression() + ", #version = #version + :one"

	tx.items = append(tx.items, types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(tx.repo.tables.BudgetRequests),
		Key:                       idKey(id),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("#version = :expected_version"),
		ExpressionAttributeNames:  set.names,
		ExpressionAttributeValues: set.values,
	}})
}

func (tx *budgetRequestTx) commit(ctx context.Context) error {
	if len(tx.items) == 0 {
		return nil
	}
	if len(tx.items) > MaxTransactItems {
		return pkg.InvalidArgument("transaction has %d writes, limit is %d", len(tx.items), MaxTransactItems)
	}

	_, err := tx.repo.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: tx.items,
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return pkg.Conflict("budget request was modified concurrently, retry the operation")
		}
		log.Printf("[budget][repository] transact write failed items=%d err=%v", len(tx.items), err)
		return err
	}
	return nil
}

// isConditionalCheckFailure reports a failed version/existence check or a
// concurrent transaction on one of the items.
func isConditionalCheckFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "ConditionalCheckFailed", "TransactionConflict":
			return true
		}
	}
	return false
}
