package chat

import "context"

// Repository is the interface for chat storage backends.
//
// All methods return ErrNotFound (possibly wrapped) when a referenced
// record does not exist. List methods return empty slices, not errors, when
// nothing matches.
type Repository interface {
	// FindChat retrieves a chat by ID.
	FindChat(ctx context.Context, chatID string) (*Chat, error)

	// ListChatsByParticipant returns every chat the participant is part of,
	// newest first.
	ListChatsByParticipant(ctx context.Context, username string) ([]Chat, error)

	// InsertChat stores a new chat.
	InsertChat(ctx context.Context, c *Chat) error

	// ListMessages returns the messages of a chat ordered by send time.
	// Returns ErrNotFound if the chat does not exist.
	ListMessages(ctx context.Context, chatID string) ([]Message, error)

	// InsertMessage appends a message to its chat.
	// Returns ErrNotFound if the chat does not exist.
	InsertMessage(ctx context.Context, m *Message) error

	// FindProfile retrieves a profile by username.
	FindProfile(ctx context.Context, username string) (*Profile, error)

	// UpsertProfile creates or replaces a profile keyed by username.
	UpsertProfile(ctx context.Context, p *Profile) error

	// Close releases backend resources. Safe to call more than once.
	Close() error
}
