package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

var errMissingCounterValue = errors.New("counter row missing value attribute")

// Sequence hands out monotonically increasing integer ids, one counter row
// per collection, via an atomic ADD on the counters table.
//
// Table requirements:
//   - PK: name (string)
//   - value (number), created on first increment
type Sequence struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewSequence(ddb *dynamodb.Client) *Sequence {
	return &Sequence{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

// Next atomically increments the named counter and returns the new value.
// Ids therefore start at 1 and never repeat, even across restarts.
func (s *Sequence) Next(ctx context.Context, name string) (int, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounterValue
	}
	return strconv.Atoi(raw.Value)
}
