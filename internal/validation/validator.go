package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/FallThunder/rajuTracker/models"
)

var (
	ErrNoData         = errors.New("no JSON data provided")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidLogType = errors.New("invalid logType")
	ErrMissingStatus  = errors.New("missing sentiment status")
	ErrInvalidStatus  = errors.New("invalid sentiment status")
	ErrInvalidField   = errors.New("invalid field")
)

// requiredFields are checked in this order, the first missing one is reported
var requiredFields = []string{"logType", "timestamp", "date"}

// Error carries the message that is returned to the client as-is.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, format string, args ...any) error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Message returns the client-facing text for a validation error.
func Message(err error) string {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.message
	}
	return err.Error()
}

// ValidateHealthLog decodes a request body and checks it is a well formed
// medication or sentiment log.
func ValidateHealthLog(body []byte) (models.HealthLog, error) {
	var log models.HealthLog

	raw, ok := decodeBody(body)
	if !ok {
		return log, newError(ErrNoData, "No JSON data provided")
	}

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return log, newError(ErrMissingField, "Missing required field: %s", field)
		}
	}

	logType, err := validateLogType(raw["logType"])
	if err != nil {
		return log, err
	}
	log.LogType = logType

	if logType == models.LogTypeSentiment {
		status, err := validateStatus(raw)
		if err != nil {
			return log, err
		}
		log.Status = status
	}

	if log.Timestamp, err = nonEmptyString(raw, "timestamp"); err != nil {
		return log, err
	}
	if log.Date, err = nonEmptyString(raw, "date"); err != nil {
		return log, err
	}

	return log, nil
}

// decodeBody reports false when there is no data: an absent or malformed
// body, or an empty JSON value (null, false, 0, "", []). Any other value
// that is not an object is treated as an object without keys.
func decodeBody(body []byte) (map[string]interface{}, bool) {
	if len(body) == 0 {
		return nil, false
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, false
	}

	switch raw := v.(type) {
	case map[string]interface{}:
		return raw, true
	case nil:
		return nil, false
	case bool:
		return nil, raw
	case float64:
		return nil, raw != 0
	case string:
		return nil, raw != ""
	case []interface{}:
		return nil, len(raw) > 0
	default:
		return nil, true
	}
}

func validateLogType(v interface{}) (models.LogType, error) {
	s, _ := v.(string)
	logType := models.LogType(s)
	if !logType.Valid() {
		return "", newError(ErrInvalidLogType, "Invalid logType. Must be one of: %s", quotedList(models.LogTypes))
	}
	return logType, nil
}

func validateStatus(raw map[string]interface{}) (models.SentimentStatus, error) {
	v, ok := raw["status"]
	if !ok {
		return "", newError(ErrMissingStatus, "Sentiment logs must include status field")
	}
	s, _ := v.(string)
	status := models.SentimentStatus(s)
	if !status.Valid() {
		return "", newError(ErrInvalidStatus, "Invalid sentiment status. Must be one of: %s", quotedList(models.SentimentStatuses))
	}
	return status, nil
}

func nonEmptyString(raw map[string]interface{}, field string) (string, error) {
	s, ok := raw[field].(string)
	if !ok || s == "" {
		return "", newError(ErrInvalidField, "%s must be a non-empty string", field)
	}
	return s, nil
}

// quotedList renders values as ['a', 'b'], the format the web client already shows users.
func quotedList[T ~string](values []T) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + string(v) + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
