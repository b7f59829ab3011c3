package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"samaritans-api/internal/model"
	"samaritans-api/pkg/log"
	"samaritans-api/pkg/scope"
)

// tokenCacheTTL bounds how long a verified token skips signature checks.
// Short enough that revocation-by-expiry stays meaningful.
const tokenCacheTTL = 5 * time.Minute

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager

	// verified token → scope, so hot sessions skip repeated JWT parsing
	tokenCache *expirable.LRU[string, model.Scope]
}

func New(l log.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		tokenCache: expirable.NewLRU[string, model.Scope](4096, nil, tokenCacheTTL),
	}
}
