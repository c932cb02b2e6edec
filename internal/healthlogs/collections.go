package healthlogs

import (
	"errors"
	"fmt"

	"github.com/FallThunder/rajuTracker/internal/config"
	"github.com/FallThunder/rajuTracker/models"
)

var ErrUnknownLogType = errors.New("unknown log type")

// Collections maps each log type to the table its documents live in.
type Collections struct {
	Medication string
	Sentiment  string
}

// DefaultCollections are the table names the web client has always written to.
func DefaultCollections() Collections {
	return Collections{
		Medication: config.DefaultMedicationTable,
		Sentiment:  config.DefaultSentimentTable,
	}
}

func CollectionsFromConfig(tables config.Tables) Collections {
	c := DefaultCollections()
	if tables.Medication != "" {
		c.Medication = tables.Medication
	}
	if tables.Sentiment != "" {
		c.Sentiment = tables.Sentiment
	}
	return c
}

func (c Collections) Resolve(logType models.LogType) (string, error) {
	switch logType {
	case models.LogTypeMedication:
		return c.Medication, nil
	case models.LogTypeSentiment:
		return c.Sentiment, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLogType, logType)
	}
}
