// Package chat defines the CipherChat domain records and the repository
// interface their persistence backends implement.
//
// This package replaces the loosely-typed row objects of the original demo
// with explicit records (Profile, Chat, Message) and a small repository
// interface, with implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: JSON-files-on-disk storage for CLI chat history
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for a managed document store
//
// # Architecture
//
// Records are identified by opaque string IDs (UUIDs). The Repository
// interface supports:
//   - Chat lookup and listing by participant
//   - Message listing per chat, ordered by send time
//   - Profile lookup and upsert by username
//
// The Service type layers the send/read flow on top of a Repository: it
// stamps IDs and timestamps and applies the selected toy transform scheme
// before a message is stored.
//
// # Usage
//
//	repo := memory.NewRepository()
//	svc := chat.NewService(repo)
//
//	c, err := svc.CreateChat(ctx, []string{"alice", "bob"})
//	msg, err := svc.Send(ctx, chat.SendInput{
//	    ChatID: c.ID, Sender: "alice", Body: "hi", Scheme: chat.SchemeXOR, Key: "secret",
//	})
package chat

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Transform schemes a message body may be stored under.
const (
	// SchemePlain stores the body as typed.
	SchemePlain = "plain"

	// SchemeCaesar stores the body Caesar-shifted; the shift is recorded on
	// the message so readers can undo it.
	SchemeCaesar = "caesar"

	// SchemeXOR stores the body XOR-encrypted and base64-encoded; the key is
	// never stored and must be supplied again to read the body.
	SchemeXOR = "xor"
)

// Profile is a chat participant.
type Profile struct {
	ID          string    `json:"id" bson:"_id"`
	Username    string    `json:"username" bson:"username"`
	DisplayName string    `json:"display_name" bson:"display_name"`
	AvatarSeed  string    `json:"avatar_seed" bson:"avatar_seed"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Chat is a conversation between two or more participants.
type Chat struct {
	ID           string    `json:"id" bson:"_id"`
	Participants []string  `json:"participants" bson:"participants"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Message is a single chat message. When Encrypted is true the Body holds
// the transformed text and Scheme names the transform that produced it.
type Message struct {
	ID        string    `json:"id" bson:"_id"`
	ChatID    string    `json:"chat_id" bson:"chat_id"`
	SenderID  string    `json:"sender_id" bson:"sender_id"`
	Body      string    `json:"body" bson:"body"`
	Encrypted bool      `json:"encrypted" bson:"encrypted"`
	Scheme    string    `json:"scheme" bson:"scheme"`
	Shift     int       `json:"shift,omitempty" bson:"shift,omitempty"`
	SentAt    time.Time `json:"sent_at" bson:"sent_at"`
}

// HasParticipant reports whether username takes part in the chat.
func (c *Chat) HasParticipant(username string) bool {
	for _, p := range c.Participants {
		if p == username {
			return true
		}
	}
	return false
}
