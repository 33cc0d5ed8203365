package repository

import (
	"context"
	"errors"
	"sort"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultColoursTableName = "colours"
	colourCounterName       = "colours"
)

type colourItem struct {
	ID         int    `dynamodbav:"id"`
	ColourName string `dynamodbav:"colour_name"`
}

// ColourDynamoRepository persists the colour catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (number)

type ColourDynamoRepository struct {
	ddb       *dynamodb.Client
	seq       *Sequence
	tableName string
}

var _ interfaces.IColourRepository = (*ColourDynamoRepository)(nil)

func NewColourDynamoRepository(ddb *dynamodb.Client, seq *Sequence) *ColourDynamoRepository {
	return &ColourDynamoRepository{
		ddb:       ddb,
		seq:       seq,
		tableName: getenvDefault("COLOURS_TABLE", defaultColoursTableName),
	}
}

func (r *ColourDynamoRepository) List(ctx context.Context) ([]entities.Colour, error) {
	colours := []entities.Colour{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []colourItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			colours = append(colours, entities.Colour{ID: it.ID, ColourName: it.ColourName})
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(colours, func(i, j int) bool { return colours[i].ID < colours[j].ID })
	return colours, nil
}

func (r *ColourDynamoRepository) Create(ctx context.Context, c entities.Colour) (entities.Colour, error) {
	id, err := r.seq.Next(ctx, colourCounterName)
	if err != nil {
		return entities.Colour{}, err
	}
	c.ID = id

	av, err := attributevalue.MarshalMap(colourItem{ID: c.ID, ColourName: c.ColourName})
	if err != nil {
		return entities.Colour{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Colour{}, err
	}
	return c, nil
}

func (r *ColourDynamoRepository) Update(ctx context.Context, c entities.Colour) (entities.Colour, error) {
	av, err := attributevalue.MarshalMap(colourItem{ID: c.ID, ColourName: c.ColourName})
	if err != nil {
		return entities.Colour{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Colour{}, nil
		}
		return entities.Colour{}, err
	}
	return c, nil
}

func (r *ColourDynamoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
	})
	return err
}
