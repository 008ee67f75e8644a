package chat

import (
	"context"
	"time"

	"github.com/cipherchat/cipherchat/pkg/observability"
)

// instrumentedRepository wraps a Repository and emits store hooks around
// every operation. NewService installs it, so all four backends report
// through the same hook points.
type instrumentedRepository struct {
	next Repository
}

func (r instrumentedRepository) FindChat(ctx context.Context, chatID string) (*Chat, error) {
	start := time.Now()
	c, err := r.next.FindChat(ctx, chatID)
	observability.Store().OnQuery(ctx, "find_chat", found(c != nil), time.Since(start), err)
	return c, err
}

func (r instrumentedRepository) ListChatsByParticipant(ctx context.Context, username string) ([]Chat, error) {
	start := time.Now()
	chats, err := r.next.ListChatsByParticipant(ctx, username)
	observability.Store().OnQuery(ctx, "list_chats", len(chats), time.Since(start), err)
	return chats, err
}

func (r instrumentedRepository) InsertChat(ctx context.Context, c *Chat) error {
	start := time.Now()
	err := r.next.InsertChat(ctx, c)
	observability.Store().OnWrite(ctx, "insert_chat", time.Since(start), err)
	return err
}

func (r instrumentedRepository) ListMessages(ctx context.Context, chatID string) ([]Message, error) {
	start := time.Now()
	msgs, err := r.next.ListMessages(ctx, chatID)
	observability.Store().OnQuery(ctx, "list_messages", len(msgs), time.Since(start), err)
	return msgs, err
}

func (r instrumentedRepository) InsertMessage(ctx context.Context, m *Message) error {
	start := time.Now()
	err := r.next.InsertMessage(ctx, m)
	observability.Store().OnWrite(ctx, "insert_message", time.Since(start), err)
	return err
}

func (r instrumentedRepository) FindProfile(ctx context.Context, username string) (*Profile, error) {
	start := time.Now()
	p, err := r.next.FindProfile(ctx, username)
	observability.Store().OnQuery(ctx, "find_profile", found(p != nil), time.Since(start), err)
	return p, err
}

func (r instrumentedRepository) UpsertProfile(ctx context.Context, p *Profile) error {
	start := time.Now()
	err := r.next.UpsertProfile(ctx, p)
	observability.Store().OnWrite(ctx, "upsert_profile", time.Since(start), err)
	return err
}

func (r instrumentedRepository) Close() error {
	return r.next.Close()
}

func found(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
