package types

import (
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// CloudEvent type constants
const (
	EventModelCreated = "ai.sam3d.model.created"
)

// ModelCreatedData is the payload of an EventModelCreated event
type ModelCreatedData struct {
	ModelID string `json:"model_id"`
	Format  Format `json:"format"`
	Size    int    `json:"size"`
	ETag    string `json:"etag"`
}

// NewModelCreatedEvent creates a CloudEvent announcing a stored model
func NewModelCreatedEvent(source string, data ModelCreatedData) cloudevents.Event {
	event := cloudevents.NewEvent()
	event.SetID(data.ModelID)
	event.SetType(EventModelCreated)
	event.SetSource(source)
	event.SetSubject(data.ModelID)
	event.SetTime(time.Now())
	_ = event.SetData(cloudevents.ApplicationJSON, data)

	return event
}
