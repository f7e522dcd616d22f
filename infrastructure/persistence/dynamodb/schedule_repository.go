package dynamodb

import (
	"context"
	"fmt"

	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"
	"migration-schedules/domain/core/valueobjects"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ScheduleRepository implements ports.ScheduleRepository on a DynamoDB table
// keyed by migration_id
type ScheduleRepository struct {
	client    API
	tableName string
	logger    *zap.Logger
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(client API, tableName string, logger *zap.Logger) *ScheduleRepository {
	return &ScheduleRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

var _ ports.ScheduleRepository = (*ScheduleRepository)(nil)

func (r *ScheduleRepository) key(id string) map[string]types.AttributeValue {
	return stringKey(entities.AttrMigrationID, id)
}

// GetByID retrieves a schedule by its ID
func (r *ScheduleRepository) GetByID(ctx context.Context, id valueobjects.MigrationID) (*entities.MigrationSchedule, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(id.String()),
	})
	if err != nil {
		logStorageError(r.logger, "GetItem", r.tableName, err)
		return nil, fmt.Errorf("failed to get migration schedule: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}
	return decodeSchedule(result.Item), nil
}

// Save writes the full record
func (r *ScheduleRepository) Save(ctx context.Context, schedule *entities.MigrationSchedule) error {
	item, err := encodeSchedule(schedule)
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		logStorageError(r.logger, "PutItem", r.tableName, err)
		return fmt.Errorf("failed to save migration schedule: %w", err)
	}

	r.logger.Debug("Migration schedule saved",
		zap.String("migrationID", schedule.MigrationID),
		zap.String("table", r.tableName),
	)
	return nil
}

// Update applies a partial update and returns the full record afterwards
func (r *ScheduleRepository) Update(ctx context.Context, id valueobjects.MigrationID, changes ports.ScheduleChanges) (*entities.MigrationSchedule, error) {
	expr, err := BuildScheduleUpdate(changes)
	if err != nil {
		return nil, err
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(id.String()),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, ports.ErrScheduleNotFound
		}
		logStorageError(r.logger, "UpdateItem", r.tableName, err)
		return nil, fmt.Errorf("failed to update migration schedule: %w", err)
	}

	r.logger.Debug("Migration schedule updated",
		zap.String("migrationID", id.String()),
		zap.Strings("fields", changes.Fields()),
	)
	return decodeSchedule(result.Attributes), nil
}

// Delete removes a schedule by key
func (r *ScheduleRepository) Delete(ctx context.Context, id valueobjects.MigrationID) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(id.String()),
	})
	if err != nil {
		logStorageError(r.logger, "DeleteItem", r.tableName, err)
		return fmt.Errorf("failed to delete migration schedule: %w", err)
	}
	return nil
}

// ListAll scans the whole table, following continuation keys
func (r *ScheduleRepository) ListAll(ctx context.Context) ([]*entities.MigrationSchedule, error) {
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	schedules := make([]*entities.MigrationSchedule, 0)
	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logStorageError(r.logger, "Scan", r.tableName, err)
			return nil, fmt.Errorf("failed to scan migration schedules: %w", err)
		}
		pages++

		for _, item := range page.Items {
			schedules = append(schedules, decodeSchedule(item))
		}
	}

	r.logger.Debug("Scanned migration schedules",
		zap.Int("count", len(schedules)),
		zap.Int("pages", pages),
	)
	return schedules, nil
}
