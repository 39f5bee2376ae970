package pkg

import (
	"go.uber.org/fx"

	"flavourfleet/pkg/cache"
	"flavourfleet/pkg/config"
	"flavourfleet/pkg/logger"
	"flavourfleet/pkg/redis"
	"flavourfleet/pkg/reply"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	cache.Module,
	reply.Module,
	redis.Module,
)
