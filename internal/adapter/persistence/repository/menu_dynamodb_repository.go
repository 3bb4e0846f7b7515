package repository

import (
	"context"
	"errors"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMenuItemsTableName = "menu_items"
	menuRestaurantIDIndex     = "restaurant_id-index"
)

type modifierGroupItem struct {
	Name    string   `dynamodbav:"name"`
	Options []string `dynamodbav:"options"`
}

type menuItemRecord struct {
	ItemID       string              `dynamodbav:"item_id"`
	RestaurantID string              `dynamodbav:"restaurant_id"`
	Name         string              `dynamodbav:"name"`
	Category     string              `dynamodbav:"category"`
	Price        float64             `dynamodbav:"price"`
	Available    bool                `dynamodbav:"available"`
	Modifiers    []modifierGroupItem `dynamodbav:"modifiers,omitempty"`
}

// MenuDynamoRepository persists MenuItem entities in DynamoDB.
//
// Table requirements:
//   - PK: item_id (string)
//   - GSI: restaurant_id-index (PK: restaurant_id)

type MenuDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMenuRepository = (*MenuDynamoRepository)(nil)

func NewMenuDynamoRepository(ddb *dynamodb.Client) *MenuDynamoRepository {
	return &MenuDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MENU_ITEMS_TABLE", defaultMenuItemsTableName),
	}
}

func (r *MenuDynamoRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.MenuItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(menuRestaurantIDIndex),
		KeyConditionExpression: aws.String("restaurant_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: restaurantID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.MenuItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec menuItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromMenuItemRecord(rec))
	}
	return items, nil
}

// SetAvailability flips one item's flag. The condition keeps this a strict
// update: a missing row reports found=false instead of inserting a stub.
func (r *MenuDynamoRepository) SetAvailability(ctx context.Context, itemID string, available bool) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_id": &types.AttributeValueMemberS{Value: itemID},
		},
		ConditionExpression: aws.String("attribute_exists(#item_id)"),
		UpdateExpression:    aws.String("SET #available = :available"),
		ExpressionAttributeNames: map[string]string{
			"#item_id":   "item_id",
			"#available": "available",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":available": &types.AttributeValueMemberBOOL{Value: available},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReplaceForRestaurant swaps the restaurant's catalog wholesale: delete the
// current rows, then insert the new ones. Not transactional; a failure can
// leave a partial catalog, which the next upload repairs.
func (r *MenuDynamoRepository) ReplaceForRestaurant(ctx context.Context, restaurantID string, items []entities.MenuItem) error {
	existing, err := r.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}
	for _, it := range existing {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"item_id": &types.AttributeValueMemberS{Value: it.ItemID},
			},
		})
		if err != nil {
			return err
		}
	}

	for _, it := range items {
		av, err := attributevalue.MarshalMap(toMenuItemRecord(it))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toMenuItemRecord(it entities.MenuItem) menuItemRecord {
	rec := menuItemRecord{
		ItemID:       it.ItemID,
		RestaurantID: it.RestaurantID,
		Name:         it.Name,
		Category:     it.Category,
		Price:        it.Price,
		Available:    it.Available,
	}
	for _, m := range it.Modifiers {
		rec.Modifiers = append(rec.Modifiers, modifierGroupItem{Name: m.Name, Options: m.Options})
	}
	return rec
}

func fromMenuItemRecord(rec menuItemRecord) entities.MenuItem {
	it := entities.MenuItem{
		ItemID:       rec.ItemID,
		RestaurantID: rec.RestaurantID,
		Name:         rec.Name,
		Category:     rec.Category,
		Price:        rec.Price,
		Available:    rec.Available,
	}
	for _, m := range rec.Modifiers {
		it.Modifiers = append(it.Modifiers, entities.ModifierGroup{Name: m.Name, Options: m.Options})
	}
	return it
}
