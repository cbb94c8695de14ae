package query

import (
	"context"
	"net/url"
)

// ResourceAPI é o lado remoto de um recurso; client.Resource o implementa
type ResourceAPI[T, C, U any] interface {
	List(ctx context.Context, params url.Values) ([]T, error)
	Create(ctx context.Context, in C) (T, error)
	Update(ctx context.Context, id string, in U) (T, error)
	Delete(ctx context.Context, id string) error
}

// Messages são os textos exibidos após cada mutação
type Messages struct {
	Created      string
	Updated      string
	Deleted      string
	CreateFailed string
	UpdateFailed string
	DeleteFailed string
}

// ResourceHooks liga um recurso da API ao cache de consultas.
// Mutações bem-sucedidas invalidam a chave do recurso uma única vez; falhas
// deixam o cache intacto. Não há atualização otimista.
type ResourceHooks[T, C, U any] struct {
	key      Key
	related  []Key
	api      ResourceAPI[T, C, U]
	cache    *Client
	notifier Notifier
	messages Messages
}

// NewResourceHooks cria os hooks de key. related são chaves de outros recursos
// alterados pelo servidor como efeito colateral das mutações.
func NewResourceHooks[T, C, U any](key Key, api ResourceAPI[T, C, U], cache *Client, notifier Notifier, messages Messages, related ...Key) *ResourceHooks[T, C, U] {
	return &ResourceHooks[T, C, U]{
		key:      key,
		related:  related,
		api:      api,
		cache:    cache,
		notifier: notifier,
		messages: messages,
	}
}

func (h *ResourceHooks[T, C, U]) Key() Key {
	return h.key
}

// List consulta o recurso pelo cache. Cada combinação de params tem sua chave,
// derivada da chave do recurso.
func (h *ResourceHooks[T, C, U]) List(ctx context.Context, params url.Values) ([]T, error) {
	key := h.key
	if encoded := params.Encode(); encoded != "" {
		key = key.With(encoded)
	}
	return Fetch(ctx, h.cache, key, func(ctx context.Context) ([]T, error) {
		return h.api.List(ctx, params)
	})
}

func (h *ResourceHooks[T, C, U]) Create(ctx context.Context, in C) (T, error) {
	out, err := h.api.Create(ctx, in)
	if err != nil {
		h.notifier.Failure(h.messages.CreateFailed, err)
		return out, err
	}
	h.settle(ctx, h.messages.Created)
	return out, nil
}

func (h *ResourceHooks[T, C, U]) Update(ctx context.Context, id string, in U) (T, error) {
	out, err := h.api.Update(ctx, id, in)
	if err != nil {
		h.notifier.Failure(h.messages.UpdateFailed, err)
		return out, err
	}
	h.settle(ctx, h.messages.Updated)
	return out, nil
}

func (h *ResourceHooks[T, C, U]) Delete(ctx context.Context, id string) error {
	if err := h.api.Delete(ctx, id); err != nil {
		h.notifier.Failure(h.messages.DeleteFailed, err)
		return err
	}
	h.settle(ctx, h.messages.Deleted)
	return nil
}

// settle roda após uma mutação aceita pela API. Uma falha ao invalidar não
// desfaz a mutação, então só é registrada.
func (h *ResourceHooks[T, C, U]) settle(ctx context.Context, message string) {
	for _, key := range append([]Key{h.key}, h.related...) {
		if err := h.cache.Invalidate(ctx, key); err != nil {
			h.cache.logger.Warn("query cache invalidation failed", "key", key.String(), "error", err)
		}
	}
	h.notifier.Success(message)
}
