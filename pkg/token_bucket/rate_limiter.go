package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket — классический token bucket: Allow снимает токен, токены
// пополняются лениво при обращении исходя из прошедшего времени.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens <= 0 {
		return false
	}

	t.tokens--
	return true
}

func (t *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	// lastRefill двигаем только когда накапали целые токены, иначе при
	// частых вызовах дробные остатки терялись бы и bucket не пополнялся
	tokensToAdd := int(elapsed * t.refillRate)
	if tokensToAdd <= 0 {
		return
	}

	t.tokens += tokensToAdd
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}
