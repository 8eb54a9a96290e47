package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors keeps one token-bucket limiter per client IP.
type Visitors struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func NewVisitors(limit rate.Limit, burst int) *Visitors {
	return &Visitors{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
	}
}

func (v *Visitors) Get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	entry, exists := v.visitors[ip]
	if !exists {
		entry = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.visitors[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// StartCleanupLoop drops limiters for IPs not seen in the last five
// minutes. Meant to run in its own goroutine for the process lifetime.
func (v *Visitors) StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		v.mu.Lock()
		for ip, entry := range v.visitors {
			if time.Since(entry.lastSeen) > 5*time.Minute {
				delete(v.visitors, ip)
			}
		}
		v.mu.Unlock()
	}
}
