// Package redis provides a chat repository backed by Redis.
//
// Records are stored as JSON strings: one key per chat and profile, a list
// per chat's messages, and a set per participant indexing the chats they
// take part in. This keeps every repository operation a handful of O(1) or
// O(n-results) Redis commands.
//
// # Key layout
//
//	chat:{id}          JSON chat record
//	chatmsgs:{id}      list of JSON message records, send order
//	chatidx:{username} set of chat IDs the participant is in
//	profile:{username} JSON profile record
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/cipherchat/cipherchat/pkg/chat"
)

// Config holds Redis connection settings.
type Config struct {
	Addr     string // host:port
	Password string // optional
	DB       int    // logical database
}

// Repository is a Redis-backed implementation of chat.Repository.
type Repository struct {
	client *redis.Client
}

// NewRepository connects to Redis and verifies the connection with a ping,
// retrying transient failures with backoff.
func NewRepository(ctx context.Context, cfg Config) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := chat.ConnectWithRetry(ctx, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return &chat.TransientError{Backend: "redis", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return &Repository{client: client}, nil
}

func chatKey(id string) string          { return "chat:" + id }
func messagesKey(id string) string      { return "chatmsgs:" + id }
func indexKey(username string) string   { return "chatidx:" + username }
func profileKey(username string) string { return "profile:" + username }

func (r *Repository) FindChat(ctx context.Context, chatID string) (*chat.Chat, error) {
	data, err := r.client.Get(ctx, chatKey(chatID)).Bytes()
	if err == redis.Nil {
		return nil, chat.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}
	var c chat.Chat
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse chat: %w", err)
	}
	return &c, nil
}

func (r *Repository) ListChatsByParticipant(ctx context.Context, username string) ([]chat.Chat, error) {
	ids, err := r.client.SMembers(ctx, indexKey(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("list chat index: %w", err)
	}

	out := make([]chat.Chat, 0, len(ids))
	for _, id := range ids {
		c, err := r.FindChat(ctx, id)
		if err == chat.ErrNotFound {
			continue // index entry for a deleted chat
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Repository) InsertChat(ctx context.Context, c *chat.Chat) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal chat: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, chatKey(c.ID), data, 0)
	for _, p := range c.Participants {
		pipe.SAdd(ctx, indexKey(p), c.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store chat: %w", err)
	}
	return nil
}

func (r *Repository) ListMessages(ctx context.Context, chatID string) ([]chat.Message, error) {
	if _, err := r.FindChat(ctx, chatID); err != nil {
		return nil, err
	}

	items, err := r.client.LRange(ctx, messagesKey(chatID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]chat.Message, 0, len(items))
	for _, item := range items {
		var m chat.Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("parse message: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *Repository) InsertMessage(ctx context.Context, m *chat.Message) error {
	if _, err := r.FindChat(ctx, m.ChatID); err != nil {
		return err
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := r.client.RPush(ctx, messagesKey(m.ChatID), data).Err(); err != nil {
		return fmt.Errorf("store message: %w", err)
	}
	return nil
}

func (r *Repository) FindProfile(ctx context.Context, username string) (*chat.Profile, error) {
	data, err := r.client.Get(ctx, profileKey(username)).Bytes()
	if err == redis.Nil {
		return nil, chat.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	var p chat.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}

func (r *Repository) UpsertProfile(ctx context.Context, p *chat.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := r.client.Set(ctx, profileKey(p.Username), data, 0).Err(); err != nil {
		return fmt.Errorf("store profile: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (r *Repository) Close() error {
	return r.client.Close()
}

var _ chat.Repository = (*Repository)(nil)
