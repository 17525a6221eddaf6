package http

import (
	"sync"
	"time"
)

const (
	staleClientAge  = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

type clientBucket struct {
	tokens   int
	lastSeen time.Time
	resetAt  time.Time
}

// RateLimiter allows up to `capacity` requests per client within each window.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	clients  map[string]*clientBucket
	stop     chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity: capacity,
		window:   window,
		clients:  make(map[string]*clientBucket),
		stop:     make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow consumes one token for the client, refilling the bucket when its
// window has elapsed.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.clients[client]
	if !exists {
		r.clients[client] = &clientBucket{
			tokens:   r.capacity - 1,
			lastSeen: now,
			resetAt:  now.Add(r.window),
		}
		return true
	}

	bucket.lastSeen = now
	if now.After(bucket.resetAt) {
		bucket.tokens = r.capacity
		bucket.resetAt = now.Add(r.window)
	}

	if bucket.tokens <= 0 {
		return false
	}
	bucket.tokens--
	return true
}

// Stop terminates the background cleanup.
func (r *RateLimiter) Stop() {
	close(r.stop)
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.dropStaleClients()
		case <-r.stop:
			return
		}
	}
}

func (r *RateLimiter) dropStaleClients() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for client, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > staleClientAge {
			delete(r.clients, client)
		}
	}
}
