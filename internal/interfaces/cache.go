package interfaces

import (
	"context"

	"github.com/outlierSlug/dubhacks2025/internal/model"
)

// RecommendationCache holds computed recommendation lists per player.
// Implementations swallow their own failures: a broken cache behaves like an empty one.
type RecommendationCache interface {
	// Load returns the cached list for playerID. key identifies the slot the caller
	// should pass to Store after a miss, so a write racing an invalidation lands in a stale slot.
	Load(ctx context.Context, playerID int64) (events []*model.Event, key string, ok bool)
	Store(ctx context.Context, key string, events []*model.Event)
	// Invalidate drops every cached list. Called after any write to players, events or rosters.
	Invalidate(ctx context.Context)
}
