package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/inference-gateway/sam3d/server/config"
	testutils "github.com/inference-gateway/sam3d/server/testutils"
	types "github.com/inference-gateway/sam3d/types"
)

func TestNewEventPublisher(t *testing.T) {
	p, err := NewEventPublisher(config.EventsConfig{})
	require.NoError(t, err)
	assert.IsType(t, NoopEventPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), types.NewModelCreatedEvent("src", types.ModelCreatedData{ModelID: "id"})))

	_, err = NewEventPublisher(config.EventsConfig{Enable: true})
	assert.EqualError(t, err, "EVENTS_SINK_URL is required when events are enabled")
}

func TestCloudEventsPublisher_Publish(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "accepted", status: http.StatusAccepted},
		{name: "rejected", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			received := testutils.NewCounter()
			headers := make(chan http.Header, 1)
			sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if received.Increment() == 1 {
					headers <- r.Header.Clone()
				}
				w.WriteHeader(tt.status)
			}))
			defer sink.Close()

			p, err := NewEventPublisher(config.EventsConfig{Enable: true, SinkURL: sink.URL})
			require.NoError(t, err)

			event := types.NewModelCreatedEvent("sam3d/test", types.ModelCreatedData{
				ModelID: "6f1c1c2e-8d1f-4c53-9f0e-3c1b2a4d5e6f",
				Format:  types.FormatPLY,
				Size:    3,
				ETag:    "bafkreitest",
			})
			err = p.Publish(context.Background(), event)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, 1, received.Get())
			h := <-headers
			assert.Equal(t, types.EventModelCreated, h.Get("Ce-Type"))
			assert.Equal(t, "6f1c1c2e-8d1f-4c53-9f0e-3c1b2a4d5e6f", h.Get("Ce-Id"))
			assert.Equal(t, "sam3d/test", h.Get("Ce-Source"))
		})
	}
}
