package dynamodb

import (
	"fmt"

	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// BuildScheduleUpdate turns a partial update into an update expression that
// touches exactly the changed attributes. The write is conditioned on the
// record still existing so a concurrent delete is not undone.
func BuildScheduleUpdate(changes ports.ScheduleChanges) (expression.Expression, error) {
	update := expression.Set(expression.Name(entities.AttrLastUpdated), expression.Value(changes.LastUpdated))

	if changes.ApplicationID != nil {
		update = update.Set(expression.Name(entities.AttrApplicationID), expression.Value(*changes.ApplicationID))
	}
	if changes.ScheduledDate != nil {
		update = update.Set(expression.Name(entities.AttrScheduledDate), expression.Value(*changes.ScheduledDate))
	}
	if changes.Status != nil {
		update = update.Set(expression.Name(entities.AttrStatus), expression.Value(*changes.Status))
	}

	switch {
	case changes.WaveID.HasValue():
		update = update.Set(expression.Name(entities.AttrWaveID), expression.Value(changes.WaveID.Value))
	case changes.WaveID.Present:
		update = update.Remove(expression.Name(entities.AttrWaveID))
	}

	condition := expression.AttributeExists(expression.Name(entities.AttrMigrationID))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(condition).
		Build()
	if err != nil {
		return expression.Expression{}, fmt.Errorf("failed to build update expression: %w", err)
	}
	return expr, nil
}
