package usecase

import (
	"context"
	"time"
)

// RecommendationCache is a read-through cache for recommendation
// responses. The engine itself stays cacheless; this sits on the caller
// side of the contract and tolerates staleness until the TTL expires.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
