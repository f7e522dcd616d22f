package dynamodb

import (
	"context"
	"fmt"

	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ApplicationRepository reads application records keyed by app_id
type ApplicationRepository struct {
	client    API
	tableName string
	logger    *zap.Logger
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(client API, tableName string, logger *zap.Logger) *ApplicationRepository {
	return &ApplicationRepository{client: client, tableName: tableName, logger: logger}
}

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

// GetByID retrieves an application; a missing record yields (nil, nil)
func (r *ApplicationRepository) GetByID(ctx context.Context, appID string) (*entities.Application, error) {
	item, err := getItem(ctx, r.client, r.tableName, stringKey("app_id", appID), r.logger)
	if err != nil || item == nil {
		return nil, err
	}

	app := &entities.Application{AppID: appID}
	if name, ok := storedName(item, "app_name"); ok {
		app.SetName(name)
	}
	return app, nil
}

// WaveRepository reads wave records keyed by wave_id
type WaveRepository struct {
	client    API
	tableName string
	logger    *zap.Logger
}

// NewWaveRepository creates a new WaveRepository
func NewWaveRepository(client API, tableName string, logger *zap.Logger) *WaveRepository {
	return &WaveRepository{client: client, tableName: tableName, logger: logger}
}

var _ ports.WaveRepository = (*WaveRepository)(nil)

// GetByID retrieves a wave; a missing record yields (nil, nil)
func (r *WaveRepository) GetByID(ctx context.Context, waveID string) (*entities.Wave, error) {
	item, err := getItem(ctx, r.client, r.tableName, stringKey("wave_id", waveID), r.logger)
	if err != nil || item == nil {
		return nil, err
	}

	wave := &entities.Wave{WaveID: waveID}
	if name, ok := storedName(item, "wave_name"); ok {
		wave.SetName(name)
	}
	return wave, nil
}

// storedName reads a name attribute. A name stored with a non-scalar type
// counts as missing.
func storedName(item map[string]types.AttributeValue, attr string) (string, bool) {
	av, ok := item[attr]
	if !ok {
		return "", false
	}
	return scalarString(av)
}

func getItem(ctx context.Context, client API, table string, key map[string]types.AttributeValue, logger *zap.Logger) (map[string]types.AttributeValue, error) {
	result, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		logStorageError(logger, "GetItem", table, err)
		return nil, fmt.Errorf("failed to get item from %s: %w", table, err)
	}
	return result.Item, nil
}
