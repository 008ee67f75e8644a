package chat_test

import (
	"context"
	"testing"

	"github.com/cipherchat/cipherchat/pkg/chat"
	"github.com/cipherchat/cipherchat/pkg/chat/memory"
	"github.com/cipherchat/cipherchat/pkg/errors"
)

func newTestService(t *testing.T) (*chat.Service, *chat.Chat) {
	t.Helper()
	svc := chat.NewService(memory.NewRepository())
	c, err := svc.CreateChat(context.Background(), []string{"alice", "bob"})
	if err != nil {
		t.Fatalf("CreateChat error: %v", err)
	}
	return svc, c
}

func TestCreateChat(t *testing.T) {
	svc, c := newTestService(t)

	if c.ID == "" {
		t.Error("chat ID not assigned")
	}
	if c.CreatedAt.IsZero() {
		t.Error("chat CreatedAt not stamped")
	}

	chats, err := svc.Chats(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Chats error: %v", err)
	}
	if len(chats) != 1 || chats[0].ID != c.ID {
		t.Errorf("Chats(alice) = %v, want the created chat", chats)
	}

	chats, err = svc.Chats(context.Background(), "mallory")
	if err != nil {
		t.Fatalf("Chats error: %v", err)
	}
	if len(chats) != 0 {
		t.Errorf("Chats(mallory) = %v, want empty", chats)
	}
}

func TestCreateChatValidation(t *testing.T) {
	svc := chat.NewService(memory.NewRepository())

	if _, err := svc.CreateChat(context.Background(), []string{"alice"}); err == nil {
		t.Error("single-participant chat should fail")
	}
	if _, err := svc.CreateChat(context.Background(), []string{"alice", ""}); err == nil {
		t.Error("empty participant name should fail")
	}
}

func TestSendPlain(t *testing.T) {
	svc, c := newTestService(t)
	ctx := context.Background()

	m, err := svc.Send(ctx, chat.SendInput{ChatID: c.ID, Sender: "alice", Body: "hi bob"})
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if m.Scheme != chat.SchemePlain || m.Encrypted {
		t.Errorf("plain message stored as %q encrypted=%v", m.Scheme, m.Encrypted)
	}
	if m.Body != "hi bob" {
		t.Errorf("Body = %q, want unchanged", m.Body)
	}
}

func TestSendCaesar(t *testing.T) {
	svc, c := newTestService(t)
	ctx := context.Background()

	m, err := svc.Send(ctx, chat.SendInput{
		ChatID: c.ID, Sender: "alice", Body: "attack at dawn", Scheme: chat.SchemeCaesar,
	})
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if m.Body == "attack at dawn" {
		t.Error("caesar message stored in the clear")
	}
	if m.Shift == 0 {
		t.Error("caesar shift not recorded on the message")
	}

	// Caesar messages decode without a key: the shift travels with them.
	msgs, err := svc.Messages(ctx, c.ID, "")
	if err != nil {
		t.Fatalf("Messages error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Body != "attack at dawn" || msgs[0].Encrypted {
		t.Errorf("Messages = %+v, want decoded caesar message", msgs)
	}
}

func TestSendXOR(t *testing.T) {
	svc, c := newTestService(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, chat.SendInput{
		ChatID: c.ID, Sender: "alice", Body: "the cake is a lie", Scheme: chat.SchemeXOR, Key: "portal",
	})
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}

	// Without the key the body stays encrypted.
	msgs, err := svc.Messages(ctx, c.ID, "")
	if err != nil {
		t.Fatalf("Messages error: %v", err)
	}
	if !msgs[0].Encrypted || msgs[0].Body == "the cake is a lie" {
		t.Errorf("message readable without key: %+v", msgs[0])
	}

	// With the right key it decodes.
	msgs, err = svc.Messages(ctx, c.ID, "portal")
	if err != nil {
		t.Fatalf("Messages error: %v", err)
	}
	if msgs[0].Encrypted || msgs[0].Body != "the cake is a lie" {
		t.Errorf("message not decoded with key: %+v", msgs[0])
	}

	// A wrong key yields garbage, not an error.
	msgs, err = svc.Messages(ctx, c.ID, "wrong!")
	if err != nil {
		t.Fatalf("Messages error: %v", err)
	}
	if msgs[0].Body == "the cake is a lie" {
		t.Error("wrong key recovered the plaintext")
	}
}

func TestSendXOREmptyKey(t *testing.T) {
	svc, c := newTestService(t)

	_, err := svc.Send(context.Background(), chat.SendInput{
		ChatID: c.ID, Sender: "alice", Body: "x", Scheme: chat.SchemeXOR,
	})
	if !errors.Is(err, errors.ErrCodeInvalidKey) {
		t.Errorf("Send error = %v, want INVALID_KEY", err)
	}
}

func TestSendUnknownScheme(t *testing.T) {
	svc, c := newTestService(t)

	_, err := svc.Send(context.Background(), chat.SendInput{
		ChatID: c.ID, Sender: "alice", Body: "x", Scheme: "rot26",
	})
	if !errors.Is(err, errors.ErrCodeInvalidScheme) {
		t.Errorf("Send error = %v, want INVALID_SCHEME", err)
	}
}

func TestSendToMissingChat(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Send(context.Background(), chat.SendInput{
		ChatID: "no-such-chat", Sender: "alice", Body: "x",
	})
	if err != chat.ErrNotFound {
		t.Errorf("Send error = %v, want ErrNotFound", err)
	}
}

func TestSaveProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p := &chat.Profile{Username: "alice", DisplayName: "Alice"}
	if err := svc.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile error: %v", err)
	}
	if p.ID == "" || p.AvatarSeed == "" || p.CreatedAt.IsZero() {
		t.Errorf("profile defaults not filled in: %+v", p)
	}

	got, err := svc.Profile(ctx, "alice")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if got.DisplayName != "Alice" {
		t.Errorf("DisplayName = %q, want Alice", got.DisplayName)
	}
}

func TestMessageOrdering(t *testing.T) {
	svc, c := newTestService(t)
	ctx := context.Background()

	for _, body := range []string{"first", "second", "third"} {
		if _, err := svc.Send(ctx, chat.SendInput{ChatID: c.ID, Sender: "alice", Body: body}); err != nil {
			t.Fatalf("Send error: %v", err)
		}
	}

	msgs, err := svc.Messages(ctx, c.ID, "")
	if err != nil {
		t.Fatalf("Messages error: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("len(msgs) = %d, want 3", len(msgs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if msgs[i].Body != want {
			t.Errorf("msgs[%d].Body = %q, want %q", i, msgs[i].Body, want)
		}
	}
}
