package main

import (
	"context"
	"log"
	"time"

	"migration-schedules/infrastructure/config"
	"migration-schedules/infrastructure/di"
	"migration-schedules/interfaces/gateway"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"go.uber.org/zap"
)

var (
	// container holds the dependency injection container
	container *di.Container

	// chiLambda wraps the chi router for HTTP API (v2) events
	chiLambda *chiadapter.ChiLambdaV2

	// coldStart tracks whether this is a cold start invocation
	coldStart = true

	coldStartTime time.Time
)

// init runs during cold start
func init() {
	coldStartTime = time.Now()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	if cfg.APIGatewayMode == config.GatewayModeHTTP {
		chiLambda = chiadapter.NewV2(container.Router.Setup())
	}

	container.Logger.Info("Lambda cold start completed",
		zap.String("mode", cfg.APIGatewayMode),
		zap.Duration("duration", time.Since(coldStartTime)),
	)
}

// Handler serves REST API (v1 proxy) events
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logColdStart(req.RequestContext.RequestID)
	resp := container.Handler.Handle(ctx, gateway.FromProxyRequest(req))
	return resp.ToProxyResponse(), nil
}

// HTTPHandler serves HTTP API (v2) events through the chi router
func HTTPHandler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	logColdStart(req.RequestContext.RequestID)
	return chiLambda.ProxyWithContextV2(ctx, req)
}

func logColdStart(requestID string) {
	if !coldStart {
		return
	}
	coldStart = false
	container.Logger.Debug("First invocation after cold start",
		zap.String("request_id", requestID),
		zap.Duration("since_init", time.Since(coldStartTime)),
	)
}

func main() {
	defer container.Shutdown()

	if chiLambda != nil {
		lambda.Start(HTTPHandler)
		return
	}
	lambda.Start(Handler)
}
