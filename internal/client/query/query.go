// Package query mantém o cache das consultas feitas à API e os hooks de
// recurso que invalidam esse cache após cada mutação.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rafabene/academia-backend/internal/domain/ports"
)

// Client é o cache de consultas. generations conta as invalidações por
// prefixo; um Fetch só grava se nenhuma invalidação atingiu sua chave
// enquanto a API respondia.
type Client struct {
	store  Store
	ttl    time.Duration
	logger ports.Logger

	mu          sync.RWMutex
	generations map[string]uint64
}

func NewClient(store Store, ttl time.Duration, logger ports.Logger) *Client {
	return &Client{store: store, ttl: ttl, logger: logger, generations: make(map[string]uint64)}
}

// generation soma as invalidações de todos os prefixos de key. Chamar com mu travado.
func (c *Client) generation(key string) uint64 {
	var total uint64
	for prefix, n := range c.generations {
		if hasPrefix(key, prefix) {
			total += n
		}
	}
	return total
}

// Fetch devolve o valor em cache para key ou chama fetch e guarda o resultado.
// Falhas do Store só geram log; a consulta segue pela API. Um resultado obtido
// antes de uma invalidação concorrente é devolvido mas não vai para o cache.
func Fetch[T any](ctx context.Context, c *Client, key Key, fetch func(context.Context) (T, error)) (T, error) {
	cacheKey := key.String()

	data, ok, err := c.store.Get(ctx, cacheKey)
	if err != nil {
		c.logger.Warn("query cache read failed", "key", cacheKey, "error", err)
	}
	if ok {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		c.logger.Warn("query cache entry discarded", "key", cacheKey)
	}

	c.mu.RLock()
	started := c.generation(cacheKey)
	c.mu.RUnlock()

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return value, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.generation(cacheKey) != started {
		c.logger.Debug("query result not cached, key invalidated during fetch", "key", cacheKey)
		return value, nil
	}
	if err := c.store.Set(ctx, cacheKey, encoded, c.ttl); err != nil {
		c.logger.Warn("query cache write failed", "key", cacheKey, "error", err)
	}
	return value, nil
}

// Invalidate remove key e todas as chaves derivadas dela. A geração sobe antes
// da remoção: um Fetch que gravou antes disso tem a entrada apagada, e um que
// grava depois percebe a mudança e desiste.
func (c *Client) Invalidate(ctx context.Context, key Key) error {
	c.mu.Lock()
	c.generations[key.String()]++
	c.mu.Unlock()

	removed, err := c.store.DeletePrefix(ctx, key.String())
	if err != nil {
		return fmt.Errorf("invalidate %s: %w", key, err)
	}
	c.logger.Debug("query cache invalidated", "key", key.String(), "removed", removed)
	return nil
}
