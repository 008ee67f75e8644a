package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cipherchat/cipherchat/pkg/cipher"
	"github.com/cipherchat/cipherchat/pkg/errors"
	"github.com/cipherchat/cipherchat/pkg/observability"
)

// Service implements the send/read flow shared by the API, CLI, and TUI.
// It stamps identity and timestamps, applies the selected transform scheme
// on send, and reverses it on read when the caller can.
type Service struct {
	repo Repository
}

// NewService creates a Service on top of repo. The repository is wrapped
// so store hooks fire for every operation regardless of backend.
func NewService(repo Repository) *Service {
	return &Service{repo: instrumentedRepository{next: repo}}
}

// SendInput describes a message to send.
type SendInput struct {
	ChatID string
	Sender string
	Body   string
	Scheme string // plain, caesar, or xor; empty means plain
	Shift  int    // caesar only; 0 means DefaultShift
	Key    string // xor only
}

// CreateChat stores a new chat between the given participants.
func (s *Service) CreateChat(ctx context.Context, participants []string) (*Chat, error) {
	if len(participants) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "a chat needs at least two participants")
	}
	for _, p := range participants {
		if err := errors.ValidateUsername(p); err != nil {
			return nil, err
		}
	}

	c := &Chat{
		ID:           uuid.NewString(),
		Participants: participants,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.InsertChat(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Chats lists the chats a participant takes part in.
func (s *Service) Chats(ctx context.Context, username string) ([]Chat, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}
	return s.repo.ListChatsByParticipant(ctx, username)
}

// Send transforms the body per the selected scheme and stores the message.
func (s *Service) Send(ctx context.Context, in SendInput) (*Message, error) {
	if err := errors.ValidateUsername(in.Sender); err != nil {
		return nil, err
	}

	m := &Message{
		ID:       uuid.NewString(),
		ChatID:   in.ChatID,
		SenderID: in.Sender,
		Scheme:   in.Scheme,
		SentAt:   time.Now().UTC(),
	}

	start := time.Now()
	err := encodeBody(m, in)
	observability.Transform().OnTransform(ctx, m.Scheme, len(in.Body), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if err := s.repo.InsertMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// encodeBody applies the selected scheme to in.Body, writing the stored
// body, shift, and encrypted flag onto m.
func encodeBody(m *Message, in SendInput) error {
	switch in.Scheme {
	case "", SchemePlain:
		m.Scheme = SchemePlain
		m.Body = in.Body
	case SchemeCaesar:
		shift := in.Shift
		if shift == 0 {
			shift = cipher.DefaultShift
		}
		if err := errors.ValidateShift(shift); err != nil {
			return err
		}
		m.Body = cipher.CaesarEncode(in.Body, shift)
		m.Shift = shift
		m.Encrypted = true
	case SchemeXOR:
		ct, err := cipher.XOREncrypt(in.Body, in.Key)
		if err != nil {
			return err
		}
		m.Body = ct
		m.Encrypted = true
	default:
		return errors.New(errors.ErrCodeInvalidScheme, "unknown scheme %q", in.Scheme)
	}
	return nil
}

// Messages returns the messages of a chat, decoding each body where
// possible: Caesar messages always decode (the shift travels with the
// message), XOR messages decode only when key is non-empty. Messages that
// stay encrypted keep Encrypted=true so the UI can flag them.
//
// A wrong XOR key does not error; it yields garbage text, which is the
// failure mode of the cipher itself.
func (s *Service) Messages(ctx context.Context, chatID, key string) ([]Message, error) {
	msgs, err := s.repo.ListMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	out := make([]Message, len(msgs))
	for i, m := range msgs {
		switch m.Scheme {
		case SchemeCaesar:
			m.Body = cipher.CaesarDecode(m.Body, m.Shift)
			m.Encrypted = false
		case SchemeXOR:
			if key != "" {
				pt, err := cipher.XORDecrypt(m.Body, key)
				if err != nil {
					return nil, err
				}
				m.Body = pt
				m.Encrypted = false
			}
		}
		out[i] = m
	}
	return out, nil
}

// Profile retrieves a participant profile by username.
func (s *Service) Profile(ctx context.Context, username string) (*Profile, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}
	return s.repo.FindProfile(ctx, username)
}

// SaveProfile creates or updates a participant profile. New profiles get an
// ID and an avatar seed derived from the username fingerprint.
func (s *Service) SaveProfile(ctx context.Context, p *Profile) error {
	if err := errors.ValidateUsername(p.Username); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.AvatarSeed == "" {
		p.AvatarSeed = cipher.Fingerprint(p.Username)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return s.repo.UpsertProfile(ctx, p)
}
