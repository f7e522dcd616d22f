package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"migration-schedules/application/commands"
	cmdhandlers "migration-schedules/application/commands/handlers"
	"migration-schedules/application/queries"
	queryhandlers "migration-schedules/application/queries/handlers"
	pkgerrors "migration-schedules/pkg/errors"
	"migration-schedules/pkg/observability"

	"go.uber.org/zap"
)

// MigrationIDParam is the path parameter carrying the schedule id
const MigrationIDParam = "migrationId"

const (
	loggingContextPrefix = "migration-schedules:"
	deletedMessage       = "Migration schedule deleted successfully"
	invalidBodyMessage   = "Invalid request body"
)

// Handlers groups the operation handlers the gateway dispatches to
type Handlers struct {
	Create *cmdhandlers.CreateScheduleHandler
	Update *cmdhandlers.UpdateScheduleHandler
	Delete *cmdhandlers.DeleteScheduleHandler
	Get    *queryhandlers.GetScheduleHandler
	List   *queryhandlers.ListSchedulesHandler
}

// ScheduleRequestHandler turns normalized requests into responses. It never
// returns an error: every failure becomes a structured response.
type ScheduleRequestHandler struct {
	handlers       Handlers
	defaultHeaders map[string]string
	tracer         *observability.Tracer
	metrics        *observability.Metrics
	logger         *zap.Logger
}

// NewScheduleRequestHandler creates a new request handler
func NewScheduleRequestHandler(
	handlers Handlers,
	allowedOrigin string,
	tracer *observability.Tracer,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ScheduleRequestHandler {
	return &ScheduleRequestHandler{
		handlers:       handlers,
		defaultHeaders: DefaultHeaders(allowedOrigin),
		tracer:         tracer,
		metrics:        metrics,
		logger:         logger,
	}
}

// DefaultHeaders returns the headers attached to every response
func DefaultHeaders(allowedOrigin string) map[string]string {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return map[string]string{
		"Access-Control-Allow-Origin": allowedOrigin,
		"Content-Type":                "application/json",
		"Cache-Control":               "no-store, no-cache",
		"Pragma":                      "no-cache",
		"Strict-Transport-Security":   "max-age=63072000; includeSubDomains; preload",
		"X-Content-Type-Options":      "nosniff",
	}
}

// result is what an operation produces before rendering
type result struct {
	status  int
	payload interface{}
	err     error
}

// Handle dispatches the request by method and renders the response
func (h *ScheduleRequestHandler) Handle(ctx context.Context, req Request) Response {
	start := time.Now()
	logger := h.logger.With(
		zap.String("context", loggingContextPrefix+req.Method),
		zap.String("requestID", req.RequestID),
	)
	logger.Debug("Invocation",
		zap.String("method", req.Method),
		zap.Any("pathParameters", req.PathParameters),
	)

	var res result
	_ = h.tracer.TraceFunction(ctx, req.Method, func(ctx context.Context) error {
		h.tracer.AddAnnotation(ctx, "method", req.Method)
		res = h.dispatch(ctx, req)
		return res.err
	})

	resp := h.render(req, res, logger)
	h.metrics.RecordOperation(ctx, req.Method, resp.StatusCode, time.Since(start))
	return resp
}

func (h *ScheduleRequestHandler) dispatch(ctx context.Context, req Request) result {
	switch req.Method {
	case http.MethodGet:
		return h.processGet(ctx, req)
	case http.MethodPost:
		return h.processPost(ctx, req)
	case http.MethodPut:
		return h.processPut(ctx, req)
	case http.MethodDelete:
		return h.processDelete(ctx, req)
	default:
		return result{err: pkgerrors.NewValidationError("Unsupported method: " + req.Method)}
	}
}

func (h *ScheduleRequestHandler) processGet(ctx context.Context, req Request) result {
	if id := req.pathParameter(MigrationIDParam); id != "" {
		schedule, err := h.handlers.Get.Handle(ctx, queries.GetScheduleQuery{MigrationID: id})
		if err != nil {
			return result{err: err}
		}
		return result{status: http.StatusOK, payload: schedule}
	}

	schedules, err := h.handlers.List.Handle(ctx, queries.ListSchedulesQuery{})
	if err != nil {
		return result{err: err}
	}
	return result{status: http.StatusOK, payload: schedules}
}

func (h *ScheduleRequestHandler) processPost(ctx context.Context, req Request) result {
	var cmd commands.CreateScheduleCommand
	if err := decodeBody(req, &cmd); err != nil {
		return result{err: err}
	}
	cmd.CreatedBy = CallerEmail(req.Authorizer)

	schedule, err := h.handlers.Create.Handle(ctx, cmd)
	if err != nil {
		return result{err: err}
	}
	return result{status: http.StatusCreated, payload: schedule}
}

func (h *ScheduleRequestHandler) processPut(ctx context.Context, req Request) result {
	id := req.pathParameter(MigrationIDParam)
	if id == "" {
		return result{err: pkgerrors.NewValidationError("migrationId is required")}
	}

	var cmd commands.UpdateScheduleCommand
	if err := decodeBody(req, &cmd); err != nil {
		return result{err: err}
	}
	cmd.MigrationID = id
	cmd.UpdatedBy = CallerEmail(req.Authorizer)

	schedule, err := h.handlers.Update.Handle(ctx, cmd)
	if err != nil {
		return result{err: err}
	}
	return result{status: http.StatusOK, payload: schedule}
}

func (h *ScheduleRequestHandler) processDelete(ctx context.Context, req Request) result {
	cmd := commands.DeleteScheduleCommand{
		MigrationID: req.pathParameter(MigrationIDParam),
		DeletedBy:   CallerEmail(req.Authorizer),
	}
	if err := h.handlers.Delete.Handle(ctx, cmd); err != nil {
		return result{err: err}
	}
	return result{status: http.StatusOK, payload: map[string]string{"message": deletedMessage}}
}

// decodeBody parses the JSON request body into v. Any decoding failure,
// including a field of the wrong type, is a client error.
func decodeBody(req Request, v interface{}) error {
	raw, err := req.decodedBody()
	if err != nil {
		return pkgerrors.NewValidationError(invalidBodyMessage).WithCause(err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return pkgerrors.NewValidationError(invalidBodyMessage).WithCause(err)
	}
	return nil
}

func (h *ScheduleRequestHandler) render(req Request, res result, logger *zap.Logger) Response {
	headers := h.headers(req)

	if res.err != nil {
		return h.errorResponse(headers, res.err, logger)
	}

	body, err := json.Marshal(res.payload)
	if err != nil {
		return h.errorResponse(headers, pkgerrors.NewInternalError("failed to encode response").WithCause(err), logger)
	}

	return Response{StatusCode: res.status, Headers: headers, Body: string(body)}
}

func (h *ScheduleRequestHandler) errorResponse(headers map[string]string, err error, logger *zap.Logger) Response {
	status := pkgerrors.HTTPStatusOf(err)
	message := pkgerrors.ClientMessage(err)

	logger.Error("Request failed",
		zap.Int("statusCode", status),
		zap.String("message", message),
		zap.Error(err),
	)

	body, marshalErr := json.Marshal(map[string][]string{"errors": {message}})
	if marshalErr != nil {
		body = []byte(fmt.Sprintf(`{"errors":[%q]}`, message))
	}
	return Response{StatusCode: status, Headers: headers, Body: string(body)}
}

// headers merges the default headers with request specific ones
func (h *ScheduleRequestHandler) headers(req Request) map[string]string {
	headers := make(map[string]string, len(h.defaultHeaders)+1)
	for k, v := range h.defaultHeaders {
		headers[k] = v
	}
	if req.RequestID != "" {
		headers["X-Request-ID"] = req.RequestID
	}
	return headers
}
