package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/flightincognito/internal/models"
	"github.com/dharmasatrya/flightincognito/internal/sites"
)

// Cache memoizes generated link sets. Encoding is deterministic, so a
// cached set for the same (request, site list) is always valid until it
// expires.
type Cache interface {
	Get(ctx context.Context, req models.SearchRequest, siteIDs []sites.ID) (models.LinkSet, bool)
	Set(ctx context.Context, req models.SearchRequest, siteIDs []sites.ID, links models.LinkSet) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, req models.SearchRequest, siteIDs []sites.ID) (models.LinkSet, bool) {
	key := generateKey(req, siteIDs)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var links models.LinkSet
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, false
	}

	return links, true
}

func (c *RedisCache) Set(ctx context.Context, req models.SearchRequest, siteIDs []sites.ID, links models.LinkSet) error {
	key := generateKey(req, siteIDs)

	data, err := json.Marshal(links)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req models.SearchRequest, siteIDs []sites.ID) (models.LinkSet, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req models.SearchRequest, siteIDs []sites.ID, links models.LinkSet) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func generateKey(req models.SearchRequest, siteIDs []sites.ID) string {
	keyData := struct {
		Origin      string
		Destination string
		DepartDate  string
		ReturnDate  string
		TripType    string
		Adults      int
		Children    int
		Infants     int
		Cabin       string
		Sites       []sites.ID
	}{
		Origin:      req.Origin,
		Destination: req.Destination,
		DepartDate:  req.DepartDate.Format("2006-01-02"),
		TripType:    string(req.TripType),
		Adults:      req.Adults,
		Children:    req.Children,
		Infants:     req.Infants,
		Cabin:       string(req.Cabin),
		Sites:       siteIDs,
	}

	if req.ReturnDate != nil {
		keyData.ReturnDate = req.ReturnDate.Format("2006-01-02")
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "links:" + hex.EncodeToString(hash[:])
}
