package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersRestaurantIndex  = "restaurant_id-index"
)

type modifierSelectionItem struct {
	Group  string `dynamodbav:"group"`
	Option string `dynamodbav:"option"`
}

type orderLineItem struct {
	ItemID       string                  `dynamodbav:"item_id"`
	Name         string                  `dynamodbav:"name"`
	UnitPrice    float64                 `dynamodbav:"unit_price"`
	Quantity     int                     `dynamodbav:"quantity"`
	Modifiers    []modifierSelectionItem `dynamodbav:"modifiers,omitempty"`
	Instructions string                  `dynamodbav:"instructions,omitempty"`
}

type orderRecord struct {
	ID            string          `dynamodbav:"id"`
	RestaurantID  string          `dynamodbav:"restaurant_id"`
	CallID        string          `dynamodbav:"call_id"`
	Fulfillment   string          `dynamodbav:"fulfillment"`
	CustomerName  string          `dynamodbav:"customer_name"`
	Phone         string          `dynamodbav:"phone"`
	Items         []orderLineItem `dynamodbav:"items"`
	Notes         string          `dynamodbav:"notes"`
	Subtotal      float64         `dynamodbav:"subtotal"`
	Tax           float64         `dynamodbav:"tax"`
	Total         float64         `dynamodbav:"total"`
	Status        string          `dynamodbav:"status"`
	CreatedAt     string          `dynamodbav:"created_at"`
	CreatedAtUnix int64           `dynamodbav:"created_at_unix"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: restaurant_id-index (PK: restaurant_id)
//
// created_at_unix duplicates created_at as a number so time-window filters
// use a numeric comparison instead of parsing timestamps server-side.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

// upsertedFields are the attributes a create-or-update call overwrites.
// status and created_at are deliberately absent: they are written with
// if_not_exists so an existing order keeps both across updates, in the same
// single write. No read-modify-write gap exists for a concurrent
// confirmation to fall into.
var upsertedFields = []string{
	"restaurant_id", "call_id", "fulfillment", "customer_name",
	"phone", "items", "notes", "subtotal", "tax", "total",
}

func (r *OrderDynamoRepository) Upsert(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}

	expr := ""
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	for _, f := range upsertedFields {
		if expr != "" {
			expr += ", "
		}
		expr += "#" + f + " = :" + f
		names["#"+f] = f
		values[":"+f] = av[f]
	}
	expr = "SET " + expr +
		", #status = if_not_exists(#status, :status)" +
		", #created_at = if_not_exists(#created_at, :created_at)" +
		", #created_at_unix = if_not_exists(#created_at_unix, :created_at_unix)"
	names["#status"] = "status"
	names["#created_at"] = "created_at"
	names["#created_at_unix"] = "created_at_unix"
	values[":status"] = av["status"]
	values[":created_at"] = av["created_at"]
	values[":created_at_unix"] = av["created_at_unix"]

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: o.ID},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Order{}, err
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

// UpdateStatus sets the status of an existing order. A missing row returns
// a zero-value Order rather than creating one.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.Order, error) {
	return r.queryByRestaurant(ctx, restaurantID, nil, nil)
}

func (r *OrderDynamoRepository) ListSince(ctx context.Context, restaurantID string, since time.Time) ([]entities.Order, error) {
	return r.queryByRestaurant(ctx, restaurantID,
		aws.String("created_at_unix >= :since"),
		map[string]types.AttributeValue{
			":since": &types.AttributeValueMemberN{Value: strconv.FormatInt(since.Unix(), 10)},
		})
}

func (r *OrderDynamoRepository) CountByStatusSince(ctx context.Context, restaurantID string, status entities.OrderStatus, since time.Time) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersRestaurantIndex),
		KeyConditionExpression: aws.String("restaurant_id = :rid"),
		FilterExpression:       aws.String("#status = :status AND created_at_unix >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":    &types.AttributeValueMemberS{Value: restaurantID},
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":since":  &types.AttributeValueMemberN{Value: strconv.FormatInt(since.Unix(), 10)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *OrderDynamoRepository) queryByRestaurant(ctx context.Context, restaurantID string, filter *string, extraValues map[string]types.AttributeValue) ([]entities.Order, error) {
	values := map[string]types.AttributeValue{
		":rid": &types.AttributeValueMemberS{Value: restaurantID},
	}
	for k, v := range extraValues {
		values[k] = v
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(ordersRestaurantIndex),
		KeyConditionExpression:    aws.String("restaurant_id = :rid"),
		FilterExpression:          filter,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec orderRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderRecord(rec))
	}
	// Newest first for history views.
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func toOrderRecord(o entities.Order) orderRecord {
	rec := orderRecord{
		ID:            o.ID,
		RestaurantID:  o.RestaurantID,
		CallID:        o.CallID,
		Fulfillment:   o.Fulfillment,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Items:         make([]orderLineItem, 0, len(o.Items)),
		Notes:         o.Notes,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Total:         o.Total,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedAtUnix: o.CreatedAt.UTC().Unix(),
	}
	for _, l := range o.Items {
		line := orderLineItem{
			ItemID:       l.ItemID,
			Name:         l.Name,
			UnitPrice:    l.UnitPrice,
			Quantity:     l.Quantity,
			Instructions: l.Instructions,
		}
		for _, m := range l.Modifiers {
			line.Modifiers = append(line.Modifiers, modifierSelectionItem{Group: m.Group, Option: m.Option})
		}
		rec.Items = append(rec.Items, line)
	}
	return rec
}

func fromOrderRecord(rec orderRecord) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	o := entities.Order{
		ID:           rec.ID,
		RestaurantID: rec.RestaurantID,
		CallID:       rec.CallID,
		Fulfillment:  rec.Fulfillment,
		CustomerName: rec.CustomerName,
		Phone:        rec.Phone,
		Items:        make([]entities.OrderLine, 0, len(rec.Items)),
		Notes:        rec.Notes,
		Subtotal:     rec.Subtotal,
		Tax:          rec.Tax,
		Total:        rec.Total,
		Status:       entities.OrderStatus(rec.Status),
		CreatedAt:    createdAt,
	}
	for _, l := range rec.Items {
		line := entities.OrderLine{
			ItemID:       l.ItemID,
			Name:         l.Name,
			UnitPrice:    l.UnitPrice,
			Quantity:     l.Quantity,
			Instructions: l.Instructions,
		}
		for _, m := range l.Modifiers {
			line.Modifiers = append(line.Modifiers, entities.ModifierSelection{Group: m.Group, Option: m.Option})
		}
		o.Items = append(o.Items, line)
	}
	return o
}
