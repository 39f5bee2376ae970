package offers

import (
	"context"
	"time"

	"flavourfleet/internal/storeapi"
	"flavourfleet/internal/structs"
	"flavourfleet/pkg/cache"
	"flavourfleet/pkg/config"
	"flavourfleet/pkg/logger"
	"flavourfleet/pkg/redis"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const cacheKey = "offers"

type (
	Params struct {
		fx.In
		Logger logger.Logger
		Config config.IConfig
		Store  storeapi.Client
		Redis  redis.Client
		Cache  cache.ICache
	}

	// Service serves the offers catalog through a thin read-through cache.
	// The store stays authoritative; a cache entry only shortcuts the next
	// read until its TTL lapses.
	Service interface {
		List(ctx context.Context, session string) ([]structs.Offer, error)
	}

	service struct {
		logger logger.Logger
		store  storeapi.Client
		redis  redis.Client
		cache  cache.ICache
		ttl    time.Duration
	}
)

func New(p Params) Service {
	ttl := p.Config.GetDuration("offers.cache_ttl")
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}

	return &service{
		logger: p.Logger,
		store:  p.Store,
		redis:  p.Redis,
		cache:  p.Cache,
		ttl:    ttl,
	}
}

func (s *service) List(ctx context.Context, session string) ([]structs.Offer, error) {
	var cached []structs.Offer
	if s.lookup(ctx, &cached) {
		return cached, nil
	}

	offers, err := s.store.ListOffers(ctx, session)
	if err != nil {
		s.logger.Error(ctx, "->store.ListOffers", zap.Error(err))
		return nil, err
	}

	s.save(ctx, offers)
	return offers, nil
}

func (s *service) lookup(ctx context.Context, out *[]structs.Offer) bool {
	if s.redis != nil {
		err := s.redis.FindObj(ctx, cacheKey, out)
		return err == nil
	}
	return s.cache.GetObj(cacheKey, out) == nil
}

func (s *service) save(ctx context.Context, offers []structs.Offer) {
	if s.redis != nil {
		if err := s.redis.SaveObj(ctx, cacheKey, offers, s.ttl); err != nil {
			s.logger.Warn(ctx, "failed to cache offers", zap.Error(err))
		}
		return
	}
	if err := s.cache.SaveObj(cacheKey, offers, s.ttl); err != nil {
		s.logger.Warn(ctx, "failed to cache offers", zap.Error(err))
	}
}
