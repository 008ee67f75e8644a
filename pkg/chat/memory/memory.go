// Package memory provides an in-memory chat repository.
//
// It is the storage backend for development and the test double for every
// consumer of chat.Repository. All data lives in process maps guarded by a
// single RWMutex; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cipherchat/cipherchat/pkg/chat"
)

// Repository is an in-memory implementation of chat.Repository.
type Repository struct {
	mu       sync.RWMutex
	chats    map[string]chat.Chat
	messages map[string][]chat.Message // keyed by chat ID
	profiles map[string]chat.Profile   // keyed by username
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		chats:    make(map[string]chat.Chat),
		messages: make(map[string][]chat.Message),
		profiles: make(map[string]chat.Profile),
	}
}

func (r *Repository) FindChat(ctx context.Context, chatID string) (*chat.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.chats[chatID]
	if !ok {
		return nil, chat.ErrNotFound
	}
	out := c
	return &out, nil
}

func (r *Repository) ListChatsByParticipant(ctx context.Context, username string) ([]chat.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []chat.Chat
	for _, c := range r.chats {
		if c.HasParticipant(username) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Repository) InsertChat(ctx context.Context, c *chat.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.chats[c.ID] = *c
	return nil
}

func (r *Repository) ListMessages(ctx context.Context, chatID string) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.chats[chatID]; !ok {
		return nil, chat.ErrNotFound
	}
	msgs := r.messages[chatID]
	out := make([]chat.Message, len(msgs))
	copy(out, msgs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out, nil
}

func (r *Repository) InsertMessage(ctx context.Context, m *chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chats[m.ChatID]; !ok {
		return chat.ErrNotFound
	}
	r.messages[m.ChatID] = append(r.messages[m.ChatID], *m)
	return nil
}

func (r *Repository) FindProfile(ctx context.Context, username string) (*chat.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[username]
	if !ok {
		return nil, chat.ErrNotFound
	}
	out := p
	return &out, nil
}

func (r *Repository) UpsertProfile(ctx context.Context, p *chat.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[p.Username] = *p
	return nil
}

// Close is a no-op for the in-memory backend.
func (r *Repository) Close() error { return nil }

var _ chat.Repository = (*Repository)(nil)
