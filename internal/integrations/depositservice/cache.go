package depositservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

const cacheKeyPrefix = "venue-booking:deposit-rules"

// RulesSource источник правил депозита с graceful degradation
type RulesSource interface {
	GetDepositRulesWithGracefulDegradation(ctx context.Context, venueID int64) ([]domain.DepositRule, error)
}

// CachedClient кеширует правила депозита в Redis
// Ошибки Redis не ломают запрос: идем в источник напрямую.
// Результат деградации не кешируется.
type CachedClient struct {
	next RulesSource
	rdb  RedisClient
	ttl  time.Duration
	log  Logger
}

func NewCachedClient(next RulesSource, rdb RedisClient, ttl time.Duration, log Logger) *CachedClient {
	return &CachedClient{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log,
	}
}

func (c *CachedClient) GetDepositRulesWithGracefulDegradation(ctx context.Context, venueID int64) ([]domain.DepositRule, error) {
	key := cacheKey(venueID)

	cached, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rules []DepositRule
		if jsonErr := json.Unmarshal(cached, &rules); jsonErr == nil {
			return toDomain(rules), nil
		}
		c.log.Warn("Corrupted deposit rules cache entry key=%s, refetching", key)
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn("Redis get failed for key=%s: %v", key, err)
	}

	rules, err := c.next.GetDepositRulesWithGracefulDegradation(ctx, venueID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(fromDomain(rules))
	if err != nil {
		c.log.Warn("Failed to encode deposit rules for venue_id=%d: %v", venueID, err)
		return rules, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("Redis set failed for key=%s: %v", key, err)
	}

	return rules, nil
}

func cacheKey(venueID int64) string {
	return fmt.Sprintf("%s:%d", cacheKeyPrefix, venueID)
}
