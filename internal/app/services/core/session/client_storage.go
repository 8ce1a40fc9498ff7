package session

import (
	"context"
	"fmt"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

// clientStorage is the durable key-value store of one visitor, kept in Redis
// under client:<visitorId>:<key>.
type clientStorage struct {
	RedisRepository contracts.RedisRepository
	VisitorID       string
	TTL             time.Duration
}

func NewClientStorage(redisRepository contracts.RedisRepository, visitorID string) contracts.ClientStorage {
	return &clientStorage{
		RedisRepository: redisRepository,
		VisitorID:       visitorID,
		TTL:             constvars.CookieAccessTokenMaxAge * time.Second,
	}
}

func (s *clientStorage) key(name string) string {
	return fmt.Sprintf(constvars.StorageNamespaceFormat, s.VisitorID, name)
}

func (s *clientStorage) Get(ctx context.Context, name string) (string, error) {
	raw, err := s.RedisRepository.Get(ctx, s.key(name))
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", nil
	}

	var value string
	err = json.Unmarshal([]byte(raw), &value)
	if err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	return value, nil
}

func (s *clientStorage) Set(ctx context.Context, name, value string) error {
	return s.RedisRepository.Set(ctx, s.key(name), value, s.TTL)
}

func (s *clientStorage) Delete(ctx context.Context, name string) error {
	return s.RedisRepository.Delete(ctx, s.key(name))
}
