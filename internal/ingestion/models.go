package ingestion

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OdometerMessage is the telemetry payload published by in-vehicle trackers
// on fleet/{vehicle_id}/odometer.
type OdometerMessage struct {
	VehicleID  uuid.UUID `json:"vehicle_id"`
	Kilometers float64   `json:"kilometers"`
	RecordedAt time.Time `json:"recorded_at"`
}

var (
	ErrEmptyPayload      = errors.New("empty payload")
	ErrMissingVehicleID  = errors.New("vehicle id missing from topic and payload")
	ErrNegativeKilometer = errors.New("kilometers must not be negative")
)

// ParseOdometerMessage decodes an odometer payload. The vehicle id may come
// from the payload or from the topic segment; the payload wins when both are
// present and they disagree the message is rejected.
func ParseOdometerMessage(topic string, payload []byte) (*OdometerMessage, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	var msg OdometerMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("invalid odometer payload: %w", err)
	}

	topicID, hasTopicID := vehicleIDFromTopic(topic)
	switch {
	case msg.VehicleID == uuid.Nil && !hasTopicID:
		return nil, ErrMissingVehicleID
	case msg.VehicleID == uuid.Nil:
		msg.VehicleID = topicID
	case hasTopicID && topicID != msg.VehicleID:
		return nil, fmt.Errorf("vehicle id mismatch: topic %s, payload %s", topicID, msg.VehicleID)
	}

	if msg.Kilometers < 0 {
		return nil, ErrNegativeKilometer
	}

	if msg.RecordedAt.IsZero() {
		msg.RecordedAt = time.Now()
	}

	return &msg, nil
}

// vehicleIDFromTopic extracts the id from fleet/{vehicle_id}/odometer.
func vehicleIDFromTopic(topic string) (uuid.UUID, bool) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
