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
	defaultFilamentsTableName = "filaments"
	filamentCounterName       = "filaments"
)

type filamentItem struct {
	ID             int     `dynamodbav:"id"`
	Size           float64 `dynamodbav:"size"`
	AmountUsed     float64 `dynamodbav:"amount_used"`
	DateOfAddition string  `dynamodbav:"date_of_addition"`
	Material       string  `dynamodbav:"material"`
	ColourName     string  `dynamodbav:"colour_name"`
}

// FilamentDynamoRepository persists filament spools in DynamoDB.
//
// Table requirements:
//   - PK: id (number)

type FilamentDynamoRepository struct {
	ddb       *dynamodb.Client
	seq       *Sequence
	tableName string
}

var _ interfaces.IFilamentRepository = (*FilamentDynamoRepository)(nil)

func NewFilamentDynamoRepository(ddb *dynamodb.Client, seq *Sequence) *FilamentDynamoRepository {
	return &FilamentDynamoRepository{
		ddb:       ddb,
		seq:       seq,
		tableName: getenvDefault("FILAMENTS_TABLE", defaultFilamentsTableName),
	}
}

func (r *FilamentDynamoRepository) List(ctx context.Context) ([]entities.Filament, error) {
	filaments := []entities.Filament{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []filamentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			filaments = append(filaments, fromFilamentItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(filaments, func(i, j int) bool { return filaments[i].ID < filaments[j].ID })
	return filaments, nil
}

func (r *FilamentDynamoRepository) GetByID(ctx context.Context, id int) (entities.Filament, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Filament{}, err
	}
	if len(out.Item) == 0 {
		return entities.Filament{}, nil
	}

	var it filamentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Filament{}, err
	}
	return fromFilamentItem(it), nil
}

func (r *FilamentDynamoRepository) Create(ctx context.Context, f entities.Filament) (entities.Filament, error) {
	id, err := r.seq.Next(ctx, filamentCounterName)
	if err != nil {
		return entities.Filament{}, err
	}
	f.ID = id

	av, err := attributevalue.MarshalMap(toFilamentItem(f))
	if err != nil {
		return entities.Filament{}, err
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
		return entities.Filament{}, err
	}
	return f, nil
}

func (r *FilamentDynamoRepository) Update(ctx context.Context, f entities.Filament) (entities.Filament, error) {
	av, err := attributevalue.MarshalMap(toFilamentItem(f))
	if err != nil {
		return entities.Filament{}, err
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
			return entities.Filament{}, nil
		}
		return entities.Filament{}, err
	}
	return f, nil
}

func (r *FilamentDynamoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
	})
	return err
}

func toFilamentItem(f entities.Filament) filamentItem {
	return filamentItem{
		ID:             f.ID,
		Size:           f.Size,
		AmountUsed:     f.AmountUsed,
		DateOfAddition: f.DateOfAddition.String(),
		Material:       f.Material,
		ColourName:     f.ColourName,
	}
}

func fromFilamentItem(it filamentItem) entities.Filament {
	date, _ := entities.ParseDateOnly(it.DateOfAddition)
	return entities.Filament{
		ID:             it.ID,
		Size:           it.Size,
		AmountUsed:     it.AmountUsed,
		DateOfAddition: date,
		Material:       it.Material,
		ColourName:     it.ColourName,
	}
}
