package repository

import (
	"context"
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
	defaultCallLogsTableName = "call_logs"
	callLogsRestaurantIndex  = "restaurant_id-index"
)

type callLogRecord struct {
	ID            string         `dynamodbav:"id"`
	RestaurantID  string         `dynamodbav:"restaurant_id"`
	CallID        string         `dynamodbav:"call_id"`
	EventType     string         `dynamodbav:"event_type"`
	Payload       map[string]any `dynamodbav:"payload,omitempty"`
	CreatedAt     string         `dynamodbav:"created_at"`
	CreatedAtUnix int64          `dynamodbav:"created_at_unix"`
}

// CallLogDynamoRepository persists CallLogEntry rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: restaurant_id-index (PK: restaurant_id)

type CallLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICallLogRepository = (*CallLogDynamoRepository)(nil)

func NewCallLogDynamoRepository(ddb *dynamodb.Client) *CallLogDynamoRepository {
	return &CallLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALL_LOGS_TABLE", defaultCallLogsTableName),
	}
}

func (r *CallLogDynamoRepository) Append(ctx context.Context, e entities.CallLogEntry) (entities.CallLogEntry, error) {
	av, err := attributevalue.MarshalMap(toCallLogRecord(e))
	if err != nil {
		return entities.CallLogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CallLogEntry{}, err
	}
	return e, nil
}

func (r *CallLogDynamoRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.CallLogEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(callLogsRestaurantIndex),
		KeyConditionExpression: aws.String("restaurant_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: restaurantID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.CallLogEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec callLogRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		entries = append(entries, fromCallLogRecord(rec))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}

func (r *CallLogDynamoRepository) CountSince(ctx context.Context, restaurantID string, since time.Time) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(callLogsRestaurantIndex),
		KeyConditionExpression: aws.String("restaurant_id = :rid"),
		FilterExpression:       aws.String("created_at_unix >= :since"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":   &types.AttributeValueMemberS{Value: restaurantID},
			":since": &types.AttributeValueMemberN{Value: strconv.FormatInt(since.Unix(), 10)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func toCallLogRecord(e entities.CallLogEntry) callLogRecord {
	return callLogRecord{
		ID:            e.ID,
		RestaurantID:  e.RestaurantID,
		CallID:        e.CallID,
		EventType:     e.EventType,
		Payload:       e.Payload,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedAtUnix: e.CreatedAt.UTC().Unix(),
	}
}

func fromCallLogRecord(rec callLogRecord) entities.CallLogEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.CallLogEntry{
		ID:           rec.ID,
		RestaurantID: rec.RestaurantID,
		CallID:       rec.CallID,
		EventType:    rec.EventType,
		Payload:      rec.Payload,
		CreatedAt:    createdAt,
	}
}
