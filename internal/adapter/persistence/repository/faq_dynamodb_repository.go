package repository

import (
	"context"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFAQsTableName = "faqs"
	faqsRestaurantIndex  = "restaurant_id-index"
)

type faqRecord struct {
	ID           string `dynamodbav:"id"`
	RestaurantID string `dynamodbav:"restaurant_id"`
	Question     string `dynamodbav:"question"`
	Answer       string `dynamodbav:"answer"`
}

// FAQDynamoRepository persists FAQ rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: restaurant_id-index (PK: restaurant_id)

type FAQDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFAQRepository = (*FAQDynamoRepository)(nil)

func NewFAQDynamoRepository(ddb *dynamodb.Client) *FAQDynamoRepository {
	return &FAQDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FAQS_TABLE", defaultFAQsTableName),
	}
}

func (r *FAQDynamoRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.FAQ, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(faqsRestaurantIndex),
		KeyConditionExpression: aws.String("restaurant_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: restaurantID},
		},
	})
	if err != nil {
		return nil, err
	}

	faqs := make([]entities.FAQ, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec faqRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		faqs = append(faqs, entities.FAQ{
			ID:           rec.ID,
			RestaurantID: rec.RestaurantID,
			Question:     rec.Question,
			Answer:       rec.Answer,
		})
	}
	return faqs, nil
}
