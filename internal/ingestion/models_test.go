package ingestion

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseOdometerMessageFromTopic(t *testing.T) {
	id := uuid.New()
	topic := fmt.Sprintf("fleet/%s/odometer", id)

	msg, err := ParseOdometerMessage(topic, []byte(`{"kilometers": 45210.5}`))
	if err != nil {
		t.Fatalf("ParseOdometerMessage: %v", err)
	}
	if msg.VehicleID != id {
		t.Fatalf("vehicle id = %s, want topic id %s", msg.VehicleID, id)
	}
	if msg.Kilometers != 45210.5 {
		t.Fatalf("kilometers = %v, want 45210.5", msg.Kilometers)
	}
	if msg.RecordedAt.IsZero() {
		t.Fatalf("recorded_at should default to now for omitted timestamps")
	}
}

func TestParseOdometerMessagePayloadID(t *testing.T) {
	id := uuid.New()
	payload := fmt.Sprintf(`{"vehicle_id": %q, "kilometers": 100, "recorded_at": "2026-08-01T10:00:00Z"}`, id)

	msg, err := ParseOdometerMessage("fleet/odometer", []byte(payload))
	if err != nil {
		t.Fatalf("ParseOdometerMessage: %v", err)
	}
	if msg.VehicleID != id {
		t.Fatalf("vehicle id = %s, want payload id %s", msg.VehicleID, id)
	}
	want := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if !msg.RecordedAt.Equal(want) {
		t.Fatalf("recorded_at = %v, want %v", msg.RecordedAt, want)
	}
}

func TestParseOdometerMessageIDMismatch(t *testing.T) {
	topicID := uuid.New()
	payloadID := uuid.New()
	topic := fmt.Sprintf("fleet/%s/odometer", topicID)
	payload := fmt.Sprintf(`{"vehicle_id": %q, "kilometers": 100}`, payloadID)

	_, err := ParseOdometerMessage(topic, []byte(payload))
	if err == nil {
		t.Fatalf("mismatched topic and payload ids should be rejected")
	}
	if !strings.Contains(err.Error(), "mismatch") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseOdometerMessageMissingID(t *testing.T) {
	_, err := ParseOdometerMessage("telemetry", []byte(`{"kilometers": 100}`))
	if !errors.Is(err, ErrMissingVehicleID) {
		t.Fatalf("err = %v, want ErrMissingVehicleID", err)
	}
}

func TestParseOdometerMessageEmptyPayload(t *testing.T) {
	_, err := ParseOdometerMessage("fleet/x/odometer", nil)
	if !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("err = %v, want ErrEmptyPayload", err)
	}
}

func TestParseOdometerMessageNegativeKilometers(t *testing.T) {
	id := uuid.New()
	topic := fmt.Sprintf("fleet/%s/odometer", id)

	_, err := ParseOdometerMessage(topic, []byte(`{"kilometers": -10}`))
	if !errors.Is(err, ErrNegativeKilometer) {
		t.Fatalf("err = %v, want ErrNegativeKilometer", err)
	}
}

func TestParseOdometerMessageBadJSON(t *testing.T) {
	if _, err := ParseOdometerMessage("fleet/x/odometer", []byte(`{kilometers}`)); err == nil {
		t.Fatalf("malformed JSON should be rejected")
	}
}
