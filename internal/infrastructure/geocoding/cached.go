package geocoding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
)

// CachedGeocoder guarda no Redis os endereços resolvidos com sucesso.
// Falhas do Redis não impedem a consulta ao provedor.
type CachedGeocoder struct {
	next   ports.Geocoder
	client *redis.Client
	ttl    time.Duration
	logger ports.Logger
}

// NewCachedGeocoder embrulha next com cache; client nil desliga o cache
func NewCachedGeocoder(next ports.Geocoder, client *redis.Client, ttl time.Duration, logger ports.Logger) ports.Geocoder {
	if client == nil {
		return next
	}
	return &CachedGeocoder{next: next, client: client, ttl: ttl, logger: logger}
}

// CacheKey arredonda para ~1 m, suficiente para partidas no mesmo local
func CacheKey(latitude, longitude float64) string {
	return fmt.Sprintf("geocode:%.5f,%.5f", latitude, longitude)
}

func (c *CachedGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	key := CacheKey(latitude, longitude)

	address, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return address, nil
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("geocode cache read failed", "key", key, "error", err)
	}

	address, err = c.next.ReverseGeocode(ctx, latitude, longitude)
	if err != nil {
		return "", err
	}

	if err := c.client.Set(ctx, key, address, c.ttl).Err(); err != nil {
		c.logger.Warn("geocode cache write failed", "key", key, "error", err)
	}

	return address, nil
}
