package egghunt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/core"
)

func TestFireworkPhases(t *testing.T) {
	fx := NewEffects(config.DefaultEggHuntConfig().Effects)
	start := time.Second
	fx.AddFirework(core.V(200, 300), start)
	e := fx.List()[0]

	tests := []struct {
		at    time.Duration
		phase EffectPhase
	}{
		{start - time.Millisecond, PhasePending},
		{start, PhaseRising},
		{start + 799*time.Millisecond, PhaseRising},
		{start + 800*time.Millisecond, PhaseBursting},
		{start + 1599*time.Millisecond, PhaseBursting},
		{start + 1600*time.Millisecond, PhaseDone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.phase, fx.Phase(e, tt.at), "at %v", tt.at)
	}

	assert.Equal(t, core.V(200, 300), fx.Position(e, start))
	assert.Equal(t, core.V(200, 236), fx.Position(e, start+800*time.Millisecond))
	assert.Equal(t, core.V(200, 236), fx.Position(e, start+time.Second))
}

func TestHitEffectLifetime(t *testing.T) {
	fx := NewEffects(config.DefaultEggHuntConfig().Effects)
	fx.AddHit(core.V(10, 10), 0)
	fx.AddFirework(core.V(20, 20), 5*time.Second)

	fx.Update(899 * time.Millisecond)
	assert.Equal(t, 1, fx.Count(EffectHit))

	fx.Update(900 * time.Millisecond)
	assert.Equal(t, 0, fx.Count(EffectHit))
	assert.Equal(t, 1, fx.Count(EffectFirework), "pending fireworks are kept")
}
