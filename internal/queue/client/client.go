package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"
)

type ctxKey int

const (
	_ ctxKey = iota
	asynqCtxKey
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex
)

// GetClient returns the enqueue client, preferring one carried on the
// context (tests) over the global. Safe for concurrent use.
func GetClient(ctx context.Context) *asynq.Client {
	if c := ctx.Value(asynqCtxKey); c != nil {
		client, ok := c.(*asynq.Client)
		if !ok {
			return nil
		}
		return client
	}

	globalMu.RLock()
	client := globalClient
	globalMu.RUnlock()

	return client
}

// SetClient replaces the global client and returns a restore function.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}
