// README: Redis read-through cache over the places and route services.
package maps

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"andrewstaxi/internal/types"
)

const (
	geocodeKeyPrefix  = "geo:text:"
	reverseKeyPrefix  = "geo:rev:"
	distanceKeyPrefix = "geo:dist:"
	// Addresses and route distances are stable enough to hold for a day.
	cacheTTL = 24 * time.Hour
)

type resolvedPlace struct {
	Ref     types.PlaceRef `json:"ref"`
	Address string         `json:"address"`
}

// CachedResolver wraps the places and route services with a Redis
// read-through cache. Cache failures are invisible to callers: a miss or a
// Redis error just falls through to the live lookup.
type CachedResolver struct {
	places *PlacesService
	routes *RouteService
	redis  *redis.Client
}

func NewCachedResolver(places *PlacesService, routes *RouteService, rdb *redis.Client) *CachedResolver {
	return &CachedResolver{places: places, routes: routes, redis: rdb}
}

func (c *CachedResolver) Ready() bool {
	return c.places.Ready() && c.routes.Ready()
}

func (c *CachedResolver) ResolveFreeText(ctx context.Context, text string) (types.PlaceRef, string, error) {
	key := geocodeKeyPrefix + strings.ToLower(strings.TrimSpace(text))
	if hit, ok := c.get(ctx, key); ok {
		return hit.Ref, hit.Address, nil
	}

	ref, addr, err := c.places.ResolveFreeText(ctx, text)
	if err != nil {
		return types.PlaceRef{}, "", err
	}
	c.set(ctx, key, resolvedPlace{Ref: ref, Address: addr})
	return ref, addr, nil
}

func (c *CachedResolver) ResolveCoordinate(ctx context.Context, p types.Point) (string, types.PlaceRef) {
	key := reverseKeyPrefix + p.String()
	if hit, ok := c.get(ctx, key); ok {
		return hit.Address, hit.Ref
	}

	addr, ref := c.places.ResolveCoordinate(ctx, p)
	c.set(ctx, key, resolvedPlace{Ref: ref, Address: addr})
	return addr, ref
}

func (c *CachedResolver) DistanceKm(ctx context.Context, origin, dest types.PlaceRef) (float64, error) {
	key := distanceKeyPrefix + waypoint(origin) + "|" + waypoint(dest)
	if c.redis != nil {
		if val, err := c.redis.Get(ctx, key).Float64(); err == nil {
			return val, nil
		}
	}

	km, err := c.routes.DistanceKm(ctx, origin, dest)
	if err != nil {
		return 0, err
	}
	if c.redis != nil {
		_ = c.redis.Set(ctx, key, km, cacheTTL).Err()
	}
	return km, nil
}

func (c *CachedResolver) get(ctx context.Context, key string) (resolvedPlace, bool) {
	if c.redis == nil {
		return resolvedPlace{}, false
	}
	raw, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return resolvedPlace{}, false
	}
	var hit resolvedPlace
	if err := json.Unmarshal(raw, &hit); err != nil {
		return resolvedPlace{}, false
	}
	return hit, true
}

func (c *CachedResolver) set(ctx context.Context, key string, val resolvedPlace) {
	if c.redis == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, raw, cacheTTL).Err()
}
