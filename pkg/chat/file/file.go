// Package file provides a chat repository backed by JSON files on disk.
//
// It persists the CLI and TUI chat history without any external service:
// each chat lives in one JSON document (record plus messages), each profile
// in another. The layout is human-readable on purpose; this backend targets
// a single local user, not concurrent processes.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cipherchat/cipherchat/pkg/chat"
)

// Repository stores chats and profiles as JSON files under a base directory.
type Repository struct {
	mu      sync.RWMutex
	baseDir string
}

// NewRepository creates a file-backed repository rooted at baseDir.
// If baseDir is empty, defaults to ~/.local/share/cipherchat/
func NewRepository(baseDir string) (*Repository, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".local", "share", "cipherchat")
	}
	for _, sub := range []string{"chats", "profiles"} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &Repository{baseDir: baseDir}, nil
}

// chatDoc is the on-disk shape of one chat: the record plus its messages.
type chatDoc struct {
	Chat     chat.Chat      `json:"chat"`
	Messages []chat.Message `json:"messages"`
}

func (r *Repository) chatPath(chatID string) string {
	return filepath.Join(r.baseDir, "chats", chatID+".json")
}

func (r *Repository) profilePath(username string) string {
	return filepath.Join(r.baseDir, "profiles", username+".json")
}

func (r *Repository) readChat(chatID string) (*chatDoc, error) {
	data, err := os.ReadFile(r.chatPath(chatID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, chat.ErrNotFound
		}
		return nil, fmt.Errorf("read chat file: %w", err)
	}
	var doc chatDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse chat file: %w", err)
	}
	return &doc, nil
}

func (r *Repository) writeChat(doc *chatDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal chat: %w", err)
	}
	if err := os.WriteFile(r.chatPath(doc.Chat.ID), data, 0600); err != nil {
		return fmt.Errorf("write chat file: %w", err)
	}
	return nil
}

func (r *Repository) FindChat(ctx context.Context, chatID string) (*chat.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, err := r.readChat(chatID)
	if err != nil {
		return nil, err
	}
	out := doc.Chat
	return &out, nil
}

func (r *Repository) ListChatsByParticipant(ctx context.Context, username string) ([]chat.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(r.baseDir, "chats"))
	if err != nil {
		return nil, fmt.Errorf("read chats dir: %w", err)
	}

	var out []chat.Chat
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		doc, err := r.readChat(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue // skip unreadable documents rather than failing the listing
		}
		if doc.Chat.HasParticipant(username) {
			out = append(out, doc.Chat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Repository) InsertChat(ctx context.Context, c *chat.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeChat(&chatDoc{Chat: *c})
}

func (r *Repository) ListMessages(ctx context.Context, chatID string) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, err := r.readChat(chatID)
	if err != nil {
		return nil, err
	}
	msgs := doc.Messages
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].SentAt.Before(msgs[j].SentAt) })
	return msgs, nil
}

func (r *Repository) InsertMessage(ctx context.Context, m *chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.readChat(m.ChatID)
	if err != nil {
		return err
	}
	doc.Messages = append(doc.Messages, *m)
	return r.writeChat(doc)
}

func (r *Repository) FindProfile(ctx context.Context, username string) (*chat.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.profilePath(username))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, chat.ErrNotFound
		}
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	var p chat.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}

func (r *Repository) UpsertProfile(ctx context.Context, p *chat.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(r.profilePath(p.Username), data, 0600); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}
	return nil
}

func (r *Repository) Close() error { return nil }

// Path returns the base directory for repository files.
func (r *Repository) Path() string {
	return r.baseDir
}

var _ chat.Repository = (*Repository)(nil)
