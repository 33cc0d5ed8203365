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
	defaultOrdersTableName = "orders"
	orderCounterName       = "orders"
)

type orderItem struct {
	ID              int     `dynamodbav:"id"`
	SizeX           float64 `dynamodbav:"size_x"`
	SizeY           float64 `dynamodbav:"size_y"`
	SizeZ           float64 `dynamodbav:"size_z"`
	Color           string  `dynamodbav:"color"`
	Entry           string  `dynamodbav:"entry"`
	Payment         string  `dynamodbav:"payment"`
	PaymentStatus   string  `dynamodbav:"payment_status"`
	Discount        float64 `dynamodbav:"discount"`
	DateOfOrder     string  `dynamodbav:"date_of_order"`
	Status          string  `dynamodbav:"status"`
	PaymentReceived bool    `dynamodbav:"payment_received"`
	SourceOfOrder   string  `dynamodbav:"source_of_order"`
	Nickname        string  `dynamodbav:"nickname"`
	Description     string  `dynamodbav:"description"`
	Price           float64 `dynamodbav:"price"`
	FilamentID      *int    `dynamodbav:"filament_id"`
	AmountUsed      float64 `dynamodbav:"amount_used"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Ids come from the shared counter table, so creates never collide and the
// id survives as a stable handle for the dashboard's edit and delete calls.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	seq       *Sequence
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, seq *Sequence) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		seq:       seq,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

// List scans the whole table. The collection is small (one workshop's order
// book) so a paginated scan sorted by id is good enough.
func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	orders := []entities.Order{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromOrderItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id int) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	id, err := r.seq.Next(ctx, orderCounterName)
	if err != nil {
		return entities.Order{}, err
	}
	o.ID = id

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
	})
	return err
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:              o.ID,
		SizeX:           o.SizeX,
		SizeY:           o.SizeY,
		SizeZ:           o.SizeZ,
		Color:           o.Color,
		Entry:           o.Entry,
		Payment:         o.Payment,
		PaymentStatus:   o.PaymentStatus,
		Discount:        o.Discount,
		DateOfOrder:     o.DateOfOrder.String(),
		Status:          string(o.Status),
		PaymentReceived: o.PaymentReceived,
		SourceOfOrder:   o.SourceOfOrder,
		Nickname:        o.Nickname,
		Description:     o.Description,
		Price:           o.Price,
		FilamentID:      o.FilamentID,
		AmountUsed:      o.AmountUsed,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	date, _ := entities.ParseDateOnly(it.DateOfOrder)
	return entities.Order{
		ID:              it.ID,
		SizeX:           it.SizeX,
		SizeY:           it.SizeY,
		SizeZ:           it.SizeZ,
		Color:           it.Color,
		Entry:           it.Entry,
		Payment:         it.Payment,
		PaymentStatus:   it.PaymentStatus,
		Discount:        it.Discount,
		DateOfOrder:     date,
		Status:          entities.OrderStatus(it.Status),
		PaymentReceived: it.PaymentReceived,
		SourceOfOrder:   it.SourceOfOrder,
		Nickname:        it.Nickname,
		Description:     it.Description,
		Price:           it.Price,
		FilamentID:      it.FilamentID,
		AmountUsed:      it.AmountUsed,
	}
}
