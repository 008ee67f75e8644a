package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Transform hooks
	tr := NoopTransformHooks{}
	tr.OnTransform(ctx, "caesar", 42, time.Millisecond, nil)
	tr.OnStegoEmbed(ctx, 5, 100, nil)
	tr.OnStegoExtract(ctx, 5, nil)

	// Store hooks
	s := NoopStoreHooks{}
	s.OnQuery(ctx, "list_messages", 10, time.Millisecond, nil)
	s.OnWrite(ctx, "insert_message", time.Millisecond, nil)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/api/chats")
	h.OnResponse(ctx, "GET", "/api/chats", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Transform().(NoopTransformHooks); !ok {
		t.Error("Transform() should return NoopTransformHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customTransform := &testTransformHooks{}
	SetTransformHooks(customTransform)
	if Transform() != customTransform {
		t.Error("SetTransformHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Transform().(NoopTransformHooks); !ok {
		t.Error("Reset() should restore NoopTransformHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testTransformHooks{}
	SetTransformHooks(custom)

	// Setting nil should be ignored
	SetTransformHooks(nil)

	if Transform() != custom {
		t.Error("SetTransformHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testTransformHooks struct{ NoopTransformHooks }
type testStoreHooks struct{ NoopStoreHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
