package models

import "strings"

// LogType selects which kind of health log a request carries
type LogType string

const (
	LogTypeMedication LogType = "medication"
	LogTypeSentiment  LogType = "sentiment"
)

// LogTypes lists the accepted log types in the order they are reported to clients.
var LogTypes = []LogType{LogTypeMedication, LogTypeSentiment}

func (t LogType) Valid() bool {
	switch t {
	case LogTypeMedication, LogTypeSentiment:
		return true
	default:
		return false
	}
}

// Title returns the log type with its first letter upper-cased ("Medication").
func (t LogType) Title() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

// SentimentStatus is how a walk felt
type SentimentStatus string

const (
	StatusDifficult SentimentStatus = "difficult"
	StatusOkay      SentimentStatus = "okay"
	StatusGood      SentimentStatus = "good"
)

var SentimentStatuses = []SentimentStatus{StatusDifficult, StatusOkay, StatusGood}

func (s SentimentStatus) Valid() bool {
	switch s {
	case StatusDifficult, StatusOkay, StatusGood:
		return true
	default:
		return false
	}
}

// HealthLog is a request that already passed validation.
// Status is only set for sentiment logs.
type HealthLog struct {
	LogType   LogType
	Timestamp string
	Date      string
	Status    SentimentStatus
}

// LogDocument is the item written to the log tables
type LogDocument struct {
	ID              string          `json:"id" dynamodbav:"id"`
	LogType         LogType         `json:"logType" dynamodbav:"logType"`
	Timestamp       string          `json:"timestamp" dynamodbav:"timestamp"`
	Date            string          `json:"date" dynamodbav:"date"`
	ServerTimestamp string          `json:"server_timestamp" dynamodbav:"server_timestamp"`
	Status          SentimentStatus `json:"status,omitempty" dynamodbav:"status,omitempty"`
}
