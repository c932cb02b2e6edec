package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FallThunder/rajuTracker/internal/validation"
	"github.com/FallThunder/rajuTracker/models"
)

func TestValidateHealthLog_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		kind    error
		message string
	}{
		{"empty body", ``, validation.ErrNoData, "No JSON data provided"},
		{"malformed json", `{"logType":`, validation.ErrNoData, "No JSON data provided"},
		{"json null", `null`, validation.ErrNoData, "No JSON data provided"},
		{"empty json array", `[]`, validation.ErrNoData, "No JSON data provided"},
		{"empty json string", `""`, validation.ErrNoData, "No JSON data provided"},
		{"json zero", `0`, validation.ErrNoData, "No JSON data provided"},
		{"json false", `false`, validation.ErrNoData, "No JSON data provided"},
		{"non-empty json array", `["medication"]`, validation.ErrMissingField, "Missing required field: logType"},
		{"non-empty json string", `"abc"`, validation.ErrMissingField, "Missing required field: logType"},
		{"json number", `42`, validation.ErrMissingField, "Missing required field: logType"},
		{"empty object", `{}`, validation.ErrMissingField, "Missing required field: logType"},
		{"missing timestamp", `{"logType":"medication","date":"2024-01-01"}`, validation.ErrMissingField, "Missing required field: timestamp"},
		{"missing date", `{"logType":"medication","timestamp":"t1"}`, validation.ErrMissingField, "Missing required field: date"},
		{"missing all but date", `{"date":"2024-01-01"}`, validation.ErrMissingField, "Missing required field: logType"},
		{"unknown logType", `{"logType":"sleep","timestamp":"t1","date":"d"}`, validation.ErrInvalidLogType, "Invalid logType. Must be one of: ['medication', 'sentiment']"},
		{"non-string logType", `{"logType":7,"timestamp":"t1","date":"d"}`, validation.ErrInvalidLogType, "Invalid logType. Must be one of: ['medication', 'sentiment']"},
		{"null logType", `{"logType":null,"timestamp":"t1","date":"d"}`, validation.ErrInvalidLogType, "Invalid logType. Must be one of: ['medication', 'sentiment']"},
		{"sentiment without status", `{"logType":"sentiment","timestamp":"t1","date":"2024-01-01"}`, validation.ErrMissingStatus, "Sentiment logs must include status field"},
		{"sentiment bad status", `{"logType":"sentiment","timestamp":"t1","date":"d","status":"great"}`, validation.ErrInvalidStatus, "Invalid sentiment status. Must be one of: ['difficult', 'okay', 'good']"},
		{"sentiment null status", `{"logType":"sentiment","timestamp":"t1","date":"d","status":null}`, validation.ErrInvalidStatus, "Invalid sentiment status. Must be one of: ['difficult', 'okay', 'good']"},
		{"empty timestamp", `{"logType":"medication","timestamp":"","date":"d"}`, validation.ErrInvalidField, "timestamp must be a non-empty string"},
		{"numeric timestamp", `{"logType":"medication","timestamp":12,"date":"d"}`, validation.ErrInvalidField, "timestamp must be a non-empty string"},
		{"empty date", `{"logType":"medication","timestamp":"t1","date":""}`, validation.ErrInvalidField, "date must be a non-empty string"},
		{"null date", `{"logType":"medication","timestamp":"t1","date":null}`, validation.ErrInvalidField, "date must be a non-empty string"},
		{"status checked before timestamp", `{"logType":"sentiment","timestamp":"","date":"d"}`, validation.ErrMissingStatus, "Sentiment logs must include status field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validation.ValidateHealthLog([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.message, validation.Message(err))
		})
	}
}

func TestValidateHealthLog_Accepts(t *testing.T) {
	t.Run("medication ignores status", func(t *testing.T) {
		log, err := validation.ValidateHealthLog([]byte(`{"logType":"medication","timestamp":"t1","date":"2024-01-01","status":"whatever"}`))
		require.NoError(t, err)
		assert.Equal(t, models.HealthLog{
			LogType:   models.LogTypeMedication,
			Timestamp: "t1",
			Date:      "2024-01-01",
		}, log)
	})

	for _, status := range models.SentimentStatuses {
		t.Run("sentiment "+string(status), func(t *testing.T) {
			body := `{"logType":"sentiment","timestamp":"t1","date":"2024-01-01","status":"` + string(status) + `"}`
			log, err := validation.ValidateHealthLog([]byte(body))
			require.NoError(t, err)
			assert.Equal(t, models.LogTypeSentiment, log.LogType)
			assert.Equal(t, status, log.Status)
		})
	}
}

func TestValidateHealthLog_SameResultTwice(t *testing.T) {
	bodies := []string{
		`{"logType":"sentiment","timestamp":"t1","date":"2024-01-01","status":"okay"}`,
		`{"logType":"sentiment","timestamp":"t1","date":"2024-01-01"}`,
		`{}`,
	}

	for _, body := range bodies {
		first, firstErr := validation.ValidateHealthLog([]byte(body))
		second, secondErr := validation.ValidateHealthLog([]byte(body))
		assert.Equal(t, first, second)
		assert.Equal(t, firstErr, secondErr)
	}
}

func TestMessage_NonValidationError(t *testing.T) {
	assert.Equal(t, "no JSON data provided", validation.Message(validation.ErrNoData))
}
