package repository

import (
	"sort"
	"strconv"
	"strings"

	"budget_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// responseKey is the client_responses primary key.
func responseKey(budgetRequestID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"budget_request_id": &types.AttributeValueMemberS{Value: budgetRequestID},
		"id":                &types.AttributeValueMemberS{Value: id},
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// updateSet builds a "SET #a = :a, #b = :b" expression with its placeholders.
type updateSet struct {
	clauses []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newUpdateSet() *updateSet {
	return &updateSet{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
	}
}

func (s *updateSet) add(attr string, v types.AttributeValue) {
	s.clauses = append(s.clauses, "#"+attr+" = :"+attr)
	s.names["#"+attr] = attr
	s.values[":"+attr] = v
}

func (s *updateSet) empty() bool { return len(s.clauses) == 0 }

func (s *updateSet) expression() string {
	return "SET " + strings.Join(s.clauses, ", ")
}

// sortAnswers orders responses by creation time, then id. The sort key alone
// orders by id.
func sortAnswers(answers []entities.AnswerRecord) {
	sort.SliceStable(answers, func(i, j int) bool {
		if !answers[i].CreatedAt.Equal(answers[j].CreatedAt) {
			return answers[i].CreatedAt.Before(answers[j].CreatedAt)
		}
		return answers[i].ID < answers[j].ID
	})
}
