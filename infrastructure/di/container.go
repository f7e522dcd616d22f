package di

import (
	"migration-schedules/infrastructure/config"
	"migration-schedules/interfaces/gateway"
	"migration-schedules/interfaces/http/rest"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Handler *gateway.ScheduleRequestHandler
	Router  *rest.Router
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown() {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
