package dynamodb

import (
	"fmt"

	"migration-schedules/domain/core/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

func encodeSchedule(schedule *entities.MigrationSchedule) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migration schedule: %w", err)
	}
	return item, nil
}

// decodeSchedule maps an item onto a schedule. Modelled attributes stored as
// S, N or B fill the typed fields; anything else, including attributes
// written by other tooling, is kept in Attributes as stored.
func decodeSchedule(item map[string]types.AttributeValue) *entities.MigrationSchedule {
	schedule := &entities.MigrationSchedule{}
	fields := map[string]*string{
		entities.AttrMigrationID:   &schedule.MigrationID,
		entities.AttrApplicationID: &schedule.ApplicationID,
		entities.AttrWaveID:        &schedule.WaveID,
		entities.AttrScheduledDate: &schedule.ScheduledDate,
		entities.AttrStatus:        &schedule.Status,
		entities.AttrCreatedBy:     &schedule.CreatedBy,
		entities.AttrLastUpdated:   &schedule.LastUpdated,
	}

	for name, av := range item {
		if field, ok := fields[name]; ok {
			if text, ok := scalarString(av); ok {
				*field = text
				delete(fields, name)
				continue
			}
		}
		if schedule.Attributes == nil {
			schedule.Attributes = make(map[string]interface{})
		}
		schedule.Attributes[name] = plainValue(av)
	}

	// an absent wave_id already renders as absent
	delete(fields, entities.AttrWaveID)
	for name := range fields {
		schedule.MarkMissing(name)
	}
	return schedule
}

// scalarString renders a string, number or binary value as text: numbers keep
// their canonical decimal form and binary data is decoded as UTF-8.
func scalarString(av types.AttributeValue) (string, bool) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value, true
	case *types.AttributeValueMemberN:
		return v.Value, true
	case *types.AttributeValueMemberB:
		return string(v.Value), true
	default:
		return "", false
	}
}

// plainValue converts an attribute value into a JSON friendly value.
// Numbers keep their exact text and binary data is rendered as text.
func plainValue(av types.AttributeValue) interface{} {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return entities.Decimal(v.Value)
	case *types.AttributeValueMemberB:
		return entities.Blob(v.Value)
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberSS:
		return append([]string{}, v.Value...)
	case *types.AttributeValueMemberNS:
		out := make([]entities.Decimal, len(v.Value))
		for i, n := range v.Value {
			out[i] = entities.Decimal(n)
		}
		return out
	case *types.AttributeValueMemberBS:
		out := make([]entities.Blob, len(v.Value))
		for i, b := range v.Value {
			out[i] = entities.Blob(b)
		}
		return out
	case *types.AttributeValueMemberL:
		out := make([]interface{}, len(v.Value))
		for i, e := range v.Value {
			out[i] = plainValue(e)
		}
		return out
	case *types.AttributeValueMemberM:
		out := make(map[string]interface{}, len(v.Value))
		for k, e := range v.Value {
			out[k] = plainValue(e)
		}
		return out
	default:
		return nil
	}
}
