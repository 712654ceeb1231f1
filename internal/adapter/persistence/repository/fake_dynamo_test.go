package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI that understands the expressions the
// repository writes: attribute_(not_)exists(#id), #version = :v and SET lists.
//
// With lagging set, index and eventually consistent queries read the
// snapshot taken by the last syncIndexes call instead of the live tables.
type fakeDynamo struct {
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	lagging  bool
	snapshot map[string]map[string]map[string]types.AttributeValue

	queries   int
	queryLog  []*dynamodb.QueryInput
	transacts []*dynamodb.TransactWriteItemsInput
	failWith  error
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) syncIndexes() {
	f.snapshot = make(map[string]map[string]map[string]types.AttributeValue, len(f.tables))
	for name, t := range f.tables {
		cp := make(map[string]map[string]types.AttributeValue, len(t))
		for k, v := range t {
			cp[k] = v
		}
		f.snapshot[name] = cp
	}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	item := f.table(aws.ToString(in.TableName))[keyOf(in.Key)]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries++
	f.queryLog = append(f.queryLog, in)
	if in.IndexName != nil && aws.ToBool(in.ConsistentRead) {
		return nil, errors.New("ValidationException: consistent reads are not supported on global secondary indexes")
	}

	lhs, placeholder, _ := strings.Cut(aws.ToString(in.KeyConditionExpression), " = ")
	attr := lhs
	if name, ok := in.ExpressionAttributeNames[lhs]; ok {
		attr = name
	}
	want := in.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS).Value

	source := f.table(aws.ToString(in.TableName))
	if f.lagging && (in.IndexName != nil || !aws.ToBool(in.ConsistentRead)) {
		source = f.snapshot[aws.ToString(in.TableName)]
	}

	var keys []string
	for k, item := range source {
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if in.ExclusiveStartKey != nil {
		start := keyOf(in.ExclusiveStartKey)
		i := sort.SearchStrings(keys, start)
		if i < len(keys) && keys[i] == start {
			i++
		}
		keys = keys[i:]
	}

	out := &dynamodb.QueryOutput{}
	if f.pageSize > 0 && len(keys) > f.pageSize {
		keys = keys[:f.pageSize]
		out.LastEvaluatedKey = primaryKey(source[keys[len(keys)-1]])
	}
	for _, k := range keys {
		out.Items = append(out.Items, source[k])
	}
	return out, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.failWith != nil {
		return nil, f.failWith
	}

	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, ti := range in.TransactItems {
		table, key, cond, names, values := describe(ti)
		existing := f.table(table)[key]
		if !conditionHolds(cond, existing, names, values) {
			reasons[i] = types.CancellationReason{Code: aws.String("ConditionalCheckFailed")}
			failed = true
			continue
		}
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
	}
	if failed {
		return nil, &types.TransactionCanceledException{Message: aws.String("cancelled"), CancellationReasons: reasons}
	}

	for _, ti := range in.TransactItems {
		switch {
		case ti.Put != nil:
			f.table(aws.ToString(ti.Put.TableName))[keyOf(ti.Put.Item)] = ti.Put.Item
		case ti.Delete != nil:
			delete(f.table(aws.ToString(ti.Delete.TableName)), keyOf(ti.Delete.Key))
		case ti.Update != nil:
			t := f.table(aws.ToString(ti.Update.TableName))
			t[keyOf(ti.Update.Key)] = applySet(t[keyOf(ti.Update.Key)], aws.ToString(ti.Update.UpdateExpression), ti.Update.ExpressionAttributeNames, ti.Update.ExpressionAttributeValues)
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

// keyOf flattens a primary key, or an item carrying one, into a map key.
// client_responses items are keyed by budget_request_id and id.
func keyOf(key map[string]types.AttributeValue) string {
	id := key["id"].(*types.AttributeValueMemberS).Value
	if brid, ok := key["budget_request_id"].(*types.AttributeValueMemberS); ok {
		return brid.Value + "#" + id
	}
	return id
}

func primaryKey(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	key := map[string]types.AttributeValue{"id": item["id"]}
	if brid, ok := item["budget_request_id"]; ok {
		key["budget_request_id"] = brid
	}
	return key
}

func describe(ti types.TransactWriteItem) (table, key, cond string, names map[string]string, values map[string]types.AttributeValue) {
	switch {
	case ti.Put != nil:
		return aws.ToString(ti.Put.TableName), keyOf(ti.Put.Item), aws.ToString(ti.Put.ConditionExpression), ti.Put.ExpressionAttributeNames, ti.Put.ExpressionAttributeValues
	case ti.Delete != nil:
		return aws.ToString(ti.Delete.TableName), keyOf(ti.Delete.Key), aws.ToString(ti.Delete.ConditionExpression), ti.Delete.ExpressionAttributeNames, ti.Delete.ExpressionAttributeValues
	default:
		return aws.ToString(ti.Update.TableName), keyOf(ti.Update.Key), aws.ToString(ti.Update.ConditionExpression), ti.Update.ExpressionAttributeNames, ti.Update.ExpressionAttributeValues
	}
}

func conditionHolds(cond string, existing map[string]types.AttributeValue, names map[string]string, values map[string]types.AttributeValue) bool {
	switch {
	case cond == "":
		return true
	case strings.HasPrefix(cond, "attribute_not_exists("):
		return existing == nil
	case strings.HasPrefix(cond, "attribute_exists("):
		return existing != nil
	default:
		parts := strings.Split(cond, " = ")
		if existing == nil || len(parts) != 2 {
			return false
		}
		got, ok := existing[names[parts[0]]].(*types.AttributeValueMemberN)
		want := values[parts[1]].(*types.AttributeValueMemberN)
		return ok && got.Value == want.Value
	}
}

func applySet(item map[string]types.AttributeValue, expr string, names map[string]string, values map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	for _, clause := range strings.Split(strings.TrimPrefix(expr, "SET "), ", ") {
		lhs, rhs, _ := strings.Cut(clause, " = ")
		attr := names[lhs]
		if base, inc, ok := strings.Cut(rhs, " + "); ok {
			cur, _ := strconv.Atoi(out[names[base]].(*types.AttributeValueMemberN).Value)
			step, _ := strconv.Atoi(values[inc].(*types.AttributeValueMemberN).Value)
			out[attr] = &types.AttributeValueMemberN{Value: fmt.Sprint(cur + step)}
			continue
		}
		out[attr] = values[rhs]
	}
	return out
}
