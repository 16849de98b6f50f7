package chat

import (
	"sync"

	"golang.org/x/time/rate"
)

// Limits configures the per-user write limiter. A zero RPS disables
// limiting.
type Limits struct {
	RPS   float64
	Burst int
}

type limiterPool struct {
	mu  sync.Mutex
	m   map[string]*rate.Limiter
	cfg Limits
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.m == nil {
		p.m = make(map[string]*rate.Limiter)
	}
	if l, ok := p.m[key]; ok {
		return l
	}
	limit := rate.Limit(p.cfg.RPS)
	if p.cfg.RPS <= 0 {
		limit = rate.Inf
	}
	burst := p.cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	l := rate.NewLimiter(limit, burst)
	p.m[key] = l
	return l
}

// Allow spends one token of userID's bucket.
func (p *limiterPool) Allow(userID string) bool {
	return p.get(userID).Allow()
}
