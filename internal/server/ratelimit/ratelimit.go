// Package ratelimit implements per-client token bucket rate limiting
// for the HTTP API. Buckets are keyed by client, path and method so one
// expensive endpoint cannot starve the rest.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket. Tokens refill continuously at rate per
// second up to cap.
type bucket struct {
	mu    sync.Mutex
	cap   float64
	rate  float64
	level float64
	stamp time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	return &bucket{
		cap:   float64(capacity),
		rate:  rate,
		level: float64(capacity),
		stamp: time.Now(),
	}
}

// refill credits tokens for the time elapsed since the last call.
// Callers must hold mu.
func (b *bucket) refill(now time.Time) {
	b.level += now.Sub(b.stamp).Seconds() * b.rate
	if b.level > b.cap {
		b.level = b.cap
	}
	b.stamp = now
}

// take consumes one token if available and reports the remaining count
// and the time at which the bucket will be full again.
func (b *bucket) take() (ok bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)

	if b.level >= 1.0 {
		b.level--
		ok = true
	}

	remaining = int(b.level)
	resetAt = now
	if b.level < b.cap {
		resetAt = now.Add(time.Duration((b.cap - b.level) / b.rate * float64(time.Second)))
	}
	return ok, remaining, resetAt
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one token bucket per client/endpoint/method triple.
type Limiter struct {
	config *Config

	mu       sync.Mutex
	buckets  map[string]*bucket
	lastSeen map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a rate limiter. A nil config selects permissive
// defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		config:   config,
		buckets:  make(map[string]*bucket),
		lastSeen: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow decides whether a request from clientID to the given endpoint
// may proceed.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Limit 0 marks an unmetered endpoint, e.g. health checks.
	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint + ":" + method
	b := l.bucketFor(key, ec)

	ok, remaining, resetAt := b.take()

	info := Info{
		Allowed:   ok,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: resetAt,
	}
	if !ok {
		if retry := time.Until(resetAt); retry > 0 {
			info.RetryAfter = retry
		}
	}
	return ok, info
}

func (l *Limiter) bucketFor(key string, ec *EndpointConfig) *bucket {
	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastSeen[key] = time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(capacity, float64(ec.Limit)/ec.Window.Seconds())
		l.buckets[key] = b
	}
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.dropStale()
		case <-l.cleanupStop:
			return
		}
	}
}

// dropStale removes buckets idle for over an hour.
func (l *Limiter) dropStale() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, seen := range l.lastSeen {
		if seen.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastSeen, key)
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
