// Package mongo provides a chat repository backed by MongoDB.
//
// Each record type gets its own collection (chats, messages, profiles) in a
// single database. Records marshal through their bson tags; the _id field
// is the record's UUID (profile documents additionally index username).
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cipherchat/cipherchat/pkg/chat"
)

// Config holds MongoDB connection settings.
type Config struct {
	URI      string // e.g. mongodb://localhost:27017
	Database string // database name; defaults to "cipherchat"
}

// Repository is a MongoDB-backed implementation of chat.Repository.
type Repository struct {
	client   *mongo.Client
	chats    *mongo.Collection
	messages *mongo.Collection
	profiles *mongo.Collection
}

// NewRepository connects to MongoDB and verifies the connection with a
// ping, retrying transient failures with backoff.
func NewRepository(ctx context.Context, cfg Config) (*Repository, error) {
	if cfg.Database == "" {
		cfg.Database = "cipherchat"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	err = chat.ConnectWithRetry(ctx, func() error {
		if err := client.Ping(ctx, nil); err != nil {
			return &chat.TransientError{Backend: "mongodb", Err: err}
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb at %s: %w", cfg.URI, err)
	}

	db := client.Database(cfg.Database)
	return &Repository{
		client:   client,
		chats:    db.Collection("chats"),
		messages: db.Collection("messages"),
		profiles: db.Collection("profiles"),
	}, nil
}

func (r *Repository) FindChat(ctx context.Context, chatID string) (*chat.Chat, error) {
	var c chat.Chat
	err := r.chats.FindOne(ctx, bson.M{"_id": chatID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, chat.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find chat: %w", err)
	}
	return &c, nil
}

func (r *Repository) ListChatsByParticipant(ctx context.Context, username string) ([]chat.Chat, error) {
	cur, err := r.chats.Find(ctx,
		bson.M{"participants": username},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}

	var out []chat.Chat
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode chats: %w", err)
	}
	return out, nil
}

func (r *Repository) InsertChat(ctx context.Context, c *chat.Chat) error {
	if _, err := r.chats.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert chat: %w", err)
	}
	return nil
}

func (r *Repository) ListMessages(ctx context.Context, chatID string) ([]chat.Message, error) {
	if _, err := r.FindChat(ctx, chatID); err != nil {
		return nil, err
	}

	cur, err := r.messages.Find(ctx,
		bson.M{"chat_id": chatID},
		options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	var out []chat.Message
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return out, nil
}

func (r *Repository) InsertMessage(ctx context.Context, m *chat.Message) error {
	if _, err := r.FindChat(ctx, m.ChatID); err != nil {
		return err
	}
	if _, err := r.messages.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *Repository) FindProfile(ctx context.Context, username string) (*chat.Profile, error) {
	var p chat.Profile
	err := r.profiles.FindOne(ctx, bson.M{"username": username}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, chat.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &p, nil
}

func (r *Repository) UpsertProfile(ctx context.Context, p *chat.Profile) error {
	_, err := r.profiles.ReplaceOne(ctx,
		bson.M{"username": p.Username},
		p,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// Close disconnects the underlying MongoDB client.
func (r *Repository) Close() error {
	return r.client.Disconnect(context.Background())
}

var _ chat.Repository = (*Repository)(nil)
