// Package idgen provides the id sources injected into the store and drafts.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	StrategyCounter = "counter"
	StrategyUUID    = "uuid"
)

type Generator interface {
	NewID() string
}

// Counter hands out "1", "2", ... and is safe for concurrent use.
type Counter struct {
	mu   sync.Mutex
	next uint64
}

func NewCounter() *Counter {
	return &Counter{next: 1}
}

func (c *Counter) NewID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.next
	c.next++
	return strconv.FormatUint(id, 10)
}

type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

func New(strategy string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategyCounter:
		return NewCounter(), nil
	case StrategyUUID:
		return UUID{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q (want %q or %q)", strategy, StrategyCounter, StrategyUUID)
	}
}
