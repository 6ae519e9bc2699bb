package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
)

func TestEventMetricsCollector_SpinStarted(t *testing.T) {
	c := NewEventMetricsCollector()
	spins := SpinsTotal.WithLabelValues("normal", domain.CategoryBell.String())
	beforeSpins := testutil.ToFloat64(spins)
	beforeWager := testutil.ToFloat64(CreditsWagered)

	evt := event.NewSpinStartedEvent("m", domain.SpinStartedPayload{
		Mode: "normal", Category: domain.CategoryBell, Bet: 3,
	})
	require.NoError(t, c.HandleEvent(context.Background(), evt))

	assert.Equal(t, beforeSpins+1, testutil.ToFloat64(spins))
	assert.Equal(t, beforeWager+3, testutil.ToFloat64(CreditsWagered))
}

func TestEventMetricsCollector_ReplaySpinWagersNothing(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(CreditsWagered)

	evt := event.NewSpinStartedEvent("m", domain.SpinStartedPayload{
		Mode: "normal", Category: domain.CategoryReplay, Bet: 3, Replay: true,
	})
	require.NoError(t, c.HandleEvent(context.Background(), evt))

	assert.Equal(t, before, testutil.ToFloat64(CreditsWagered))
}

func TestEventMetricsCollector_ForcedMiss(t *testing.T) {
	c := NewEventMetricsCollector()
	misses := ForcedMisses.WithLabelValues("2")
	before := testutil.ToFloat64(misses)

	evt := event.NewReelStoppedEvent("m", domain.ReelStoppedPayload{Reel: 2, Slip: 4, ForcedMiss: true})
	require.NoError(t, c.HandleEvent(context.Background(), evt))

	assert.Equal(t, before+1, testutil.ToFloat64(misses))
}

func TestEventMetricsCollector_SpinEvaluated(t *testing.T) {
	c := NewEventMetricsCollector()
	paid := CreditsPaid.WithLabelValues(domain.CategoryWatermelon.String())
	before := testutil.ToFloat64(paid)

	evt := event.NewSpinEvaluatedEvent("m", domain.SpinResult{Category: domain.CategoryWatermelon, Payout: 6})
	require.NoError(t, c.HandleEvent(context.Background(), evt))

	assert.Equal(t, before+6, testutil.ToFloat64(paid))
}

func TestEventMetricsCollector_BonusTransitions(t *testing.T) {
	c := NewEventMetricsCollector()
	cat := domain.CategoryBonusBigA.String()

	tests := []struct {
		name       string
		typ        event.Type
		hidden     bool
		transition string
	}{
		{"held", event.BonusHeld, false, TransitionHeld},
		{"held hidden", event.BonusHeld, true, TransitionHeldHidden},
		{"landed", event.BonusLanded, false, TransitionLanded},
		{"finished", event.BonusFinished, false, TransitionFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := BonusTransitions.WithLabelValues(tt.transition, cat)
			before := testutil.ToFloat64(counter)

			evt := event.NewBonusEvent(tt.typ, "m", domain.BonusPayload{
				Category: domain.CategoryBonusBigA, Hidden: tt.hidden,
			})
			require.NoError(t, c.HandleEvent(context.Background(), evt))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestEventMetricsCollector_UndecodablePayload(t *testing.T) {
	c := NewEventMetricsCollector()
	published := EventsPublished.WithLabelValues(string(event.SpinEvaluated))
	before := testutil.ToFloat64(published)

	evt := event.Event{Type: event.SpinEvaluated, Payload: make(chan int)}
	assert.NoError(t, c.HandleEvent(context.Background(), evt))
	assert.Equal(t, before+1, testutil.ToFloat64(published))
}

func TestEventMetricsCollector_Register(t *testing.T) {
	c := NewEventMetricsCollector()
	bus := event.NewMemoryBus()
	require.NoError(t, c.Register(bus))

	published := EventsPublished.WithLabelValues(string(event.BonusLanded))
	before := testutil.ToFloat64(published)

	require.NoError(t, bus.Publish(context.Background(), event.NewBonusEvent(event.BonusLanded, "m", domain.BonusPayload{})))
	assert.Equal(t, before+1, testutil.ToFloat64(published))
}
