package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/cipherchat/cipherchat/pkg/chat"
	"github.com/cipherchat/cipherchat/pkg/observability"
)

// captureTransformHooks records OnTransform calls.
type captureTransformHooks struct {
	schemes []string
	errs    []error
}

func (h *captureTransformHooks) OnTransform(_ context.Context, scheme string, _ int, _ time.Duration, err error) {
	h.schemes = append(h.schemes, scheme)
	h.errs = append(h.errs, err)
}
func (h *captureTransformHooks) OnStegoEmbed(context.Context, int, int, error) {}
func (h *captureTransformHooks) OnStegoExtract(context.Context, int, error)    {}

// captureStoreHooks records repository operation names.
type captureStoreHooks struct {
	queries []string
	counts  []int
	writes  []string
}

func (h *captureStoreHooks) OnQuery(_ context.Context, op string, results int, _ time.Duration, _ error) {
	h.queries = append(h.queries, op)
	h.counts = append(h.counts, results)
}

func (h *captureStoreHooks) OnWrite(_ context.Context, op string, _ time.Duration, _ error) {
	h.writes = append(h.writes, op)
}

func TestSendEmitsTransformHook(t *testing.T) {
	hooks := &captureTransformHooks{}
	observability.SetTransformHooks(hooks)
	t.Cleanup(observability.Reset)

	svc, c := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Send(ctx, chat.SendInput{
		ChatID: c.ID, Sender: "alice", Body: "hi", Scheme: chat.SchemeCaesar,
	}); err != nil {
		t.Fatalf("Send error: %v", err)
	}

	// A failed transform still fires the hook, carrying the error.
	if _, err := svc.Send(ctx, chat.SendInput{
		ChatID: c.ID, Sender: "alice", Body: "hi", Scheme: chat.SchemeXOR,
	}); err == nil {
		t.Fatal("expected error for XOR without key")
	}

	if len(hooks.schemes) != 2 {
		t.Fatalf("OnTransform calls = %d, want 2", len(hooks.schemes))
	}
	if hooks.schemes[0] != chat.SchemeCaesar || hooks.errs[0] != nil {
		t.Errorf("first call = (%q, %v), want (caesar, nil)", hooks.schemes[0], hooks.errs[0])
	}
	if hooks.schemes[1] != chat.SchemeXOR || hooks.errs[1] == nil {
		t.Errorf("second call = (%q, %v), want (xor, missing-key error)", hooks.schemes[1], hooks.errs[1])
	}
}

func TestRepositoryEmitsStoreHooks(t *testing.T) {
	hooks := &captureStoreHooks{}
	observability.SetStoreHooks(hooks)
	t.Cleanup(observability.Reset)

	svc, c := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Send(ctx, chat.SendInput{ChatID: c.ID, Sender: "alice", Body: "hi"}); err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if _, err := svc.Messages(ctx, c.ID, ""); err != nil {
		t.Fatalf("Messages error: %v", err)
	}

	wantWrites := map[string]bool{"insert_chat": false, "insert_message": false}
	for _, op := range hooks.writes {
		if _, ok := wantWrites[op]; ok {
			wantWrites[op] = true
		}
	}
	for op, seen := range wantWrites {
		if !seen {
			t.Errorf("OnWrite never fired for %q (writes: %v)", op, hooks.writes)
		}
	}

	found := false
	for i, op := range hooks.queries {
		if op == "list_messages" {
			found = true
			if hooks.counts[i] != 1 {
				t.Errorf("list_messages result count = %d, want 1", hooks.counts[i])
			}
		}
	}
	if !found {
		t.Errorf("OnQuery never fired for list_messages (queries: %v)", hooks.queries)
	}
}
