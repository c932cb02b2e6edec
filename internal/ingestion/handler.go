package ingestion

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/FallThunder/rajuTracker/internal/cors"
	"github.com/FallThunder/rajuTracker/internal/metrics"
	"github.com/FallThunder/rajuTracker/internal/validation"
	"github.com/FallThunder/rajuTracker/models"
)

const internalErrorMessage = "Internal server error"

// LogSaver persists a validated health log and returns the new document id.
type LogSaver interface {
	SaveLog(ctx context.Context, log models.HealthLog) (string, error)
}

// Service holds dependencies for the ingestion logic
type Service struct {
	Logger  *slog.Logger
	Store   LogSaver
	Metrics *metrics.Metrics
}

type errorBody struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

type successBody struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HandleRequest validates and stores one health log. The returned error is
// always nil; failures are reported through the response status code.
func (s *Service) HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	if req.HTTPMethod == http.MethodOptions {
		s.Metrics.ObserveOutcome(metrics.OutcomePreflight)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusNoContent,
			Headers:    cors.Headers(true),
		}, nil
	}

	// Panic Recovery Shield
	defer func() {
		if r := recover(); r != nil {
			s.logger().Error("Error in health logging handler", "panic", r)
			s.Metrics.ObserveOutcome(metrics.OutcomePanic)
			resp = errorResponse(http.StatusInternalServerError, internalErrorMessage)
			err = nil
		}
	}()

	log, verr := validation.ValidateHealthLog(requestBody(req))
	if verr != nil {
		s.logValidationError(verr)
		return errorResponse(http.StatusBadRequest, validation.Message(verr)), nil
	}

	id, serr := s.Store.SaveLog(ctx, log)
	if serr != nil {
		// the store already logged the cause
		s.logger().Warn("Health log not stored", "log_type", log.LogType)
		s.Metrics.ObserveOutcome(metrics.OutcomeFailed)
		return errorResponse(http.StatusInternalServerError, internalErrorMessage), nil
	}

	s.logger().Info("Health log stored", "log_type", log.LogType, "id", id)
	s.Metrics.ObserveStored(string(log.LogType))

	return jsonResponse(http.StatusOK, successBody{
		Message: log.LogType.Title() + " log stored successfully",
		Status:  "success",
	}), nil
}

// requestBody returns nil when a base64 body cannot be decoded, which the
// validator reports as missing data.
func requestBody(req events.APIGatewayProxyRequest) []byte {
	if !req.IsBase64Encoded {
		return []byte(req.Body)
	}
	decoded, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return nil
	}
	return decoded
}

func errorResponse(status int, message string) events.APIGatewayProxyResponse {
	return jsonResponse(status, errorBody{Error: message, Status: "error"})
}

func jsonResponse(status int, body interface{}) events.APIGatewayProxyResponse {
	headers := cors.Headers(false)
	headers["Content-Type"] = "application/json"

	b, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		b = []byte(`{"error":"Internal server error","status":"error"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(b),
	}
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Service) logValidationError(err error) {
	reason := "unknown"
	switch {
	case errors.Is(err, validation.ErrNoData):
		reason = "no_data"
	case errors.Is(err, validation.ErrMissingField):
		reason = "missing_field"
	case errors.Is(err, validation.ErrInvalidLogType):
		reason = "invalid_log_type"
	case errors.Is(err, validation.ErrMissingStatus), errors.Is(err, validation.ErrInvalidStatus):
		reason = "invalid_status"
	case errors.Is(err, validation.ErrInvalidField):
		reason = "invalid_field"
	}

	s.logger().Warn("Invalid health log", "reason", reason, "error", err)
	s.Metrics.ObserveInvalid(reason)
}
