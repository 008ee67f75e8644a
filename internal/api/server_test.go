package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/cipherchat/cipherchat/pkg/chat"
	"github.com/cipherchat/cipherchat/pkg/chat/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := chat.NewService(memory.NewRepository())
	srv := NewServer(svc, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func intPtr(i int) *int { return &i }

func decodeTo(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestChatLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// Create a chat.
	resp := postJSON(t, ts.URL+"/api/chats", map[string]any{
		"participants": []string{"alice", "bob"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create chat status = %d, want 201", resp.StatusCode)
	}
	var created chat.Chat
	decodeTo(t, resp, &created)
	if created.ID == "" {
		t.Fatal("created chat has no ID")
	}

	// Listing by participant finds it.
	resp, err := http.Get(ts.URL + "/api/chats?participant=alice")
	if err != nil {
		t.Fatalf("GET chats: %v", err)
	}
	var chats []chat.Chat
	decodeTo(t, resp, &chats)
	if len(chats) != 1 || chats[0].ID != created.ID {
		t.Errorf("chats = %+v, want the created chat", chats)
	}

	// Send an XOR message.
	resp = postJSON(t, fmt.Sprintf("%s/api/chats/%s/messages", ts.URL, created.ID), map[string]any{
		"sender": "alice",
		"body":   "secret plans",
		"scheme": "xor",
		"key":    "hunter2",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("send message status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	// Without the key the body stays encrypted.
	resp, err = http.Get(fmt.Sprintf("%s/api/chats/%s/messages", ts.URL, created.ID))
	if err != nil {
		t.Fatalf("GET messages: %v", err)
	}
	var msgs []chat.Message
	decodeTo(t, resp, &msgs)
	if len(msgs) != 1 || !msgs[0].Encrypted || msgs[0].Body == "secret plans" {
		t.Errorf("messages without key = %+v", msgs)
	}

	// With the key it decodes.
	resp, err = http.Get(fmt.Sprintf("%s/api/chats/%s/messages?key=hunter2", ts.URL, created.ID))
	if err != nil {
		t.Fatalf("GET messages: %v", err)
	}
	decodeTo(t, resp, &msgs)
	if len(msgs) != 1 || msgs[0].Body != "secret plans" {
		t.Errorf("messages with key = %+v", msgs)
	}
}

func TestSendToMissingChat(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/chats/no-such-chat/messages", map[string]any{
		"sender": "alice", "body": "hi",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	var e errorResponse
	decodeTo(t, resp, &e)
	if e.Code != "NOT_FOUND" {
		t.Errorf("error code = %q, want NOT_FOUND", e.Code)
	}
}

func TestCreateChatValidation(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/chats", map[string]any{
		"participants": []string{"alice"},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/profiles/alice",
		bytes.NewReader([]byte(`{"display_name": "Alice"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT profile: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/api/profiles/alice")
	if err != nil {
		t.Fatalf("GET profile: %v", err)
	}
	var p chat.Profile
	decodeTo(t, resp, &p)
	if p.Username != "alice" || p.DisplayName != "Alice" || p.AvatarSeed == "" {
		t.Errorf("profile = %+v", p)
	}
}

func TestProfileNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/profiles/ghost")
	if err != nil {
		t.Fatalf("GET profile: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestTransformEndpoint(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		req        transformRequest
		wantStatus int
		wantResult string
	}{
		{
			name:       "caesar encode default shift",
			req:        transformRequest{Op: "caesar-encode", Text: "hello"},
			wantStatus: http.StatusOK,
			wantResult: "khoor",
		},
		{
			name:       "caesar decode explicit shift",
			req:        transformRequest{Op: "caesar-decode", Text: "nggnpx", Shift: intPtr(13)},
			wantStatus: http.StatusOK,
			wantResult: "attack",
		},
		{
			name:       "caesar encode zero shift is identity",
			req:        transformRequest{Op: "caesar-encode", Text: "hello", Shift: intPtr(0)},
			wantStatus: http.StatusOK,
			wantResult: "hello",
		},
		{
			name:       "base64 encode",
			req:        transformRequest{Op: "base64-encode", Text: "hello"},
			wantStatus: http.StatusOK,
			wantResult: "aGVsbG8=",
		},
		{
			name:       "detect",
			req:        transformRequest{Op: "detect", Text: "01001000 01101001"},
			wantStatus: http.StatusOK,
			wantResult: "Binary",
		},
		{
			name:       "malformed base64 decode",
			req:        transformRequest{Op: "base64-decode", Text: "!!!"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "xor without key",
			req:        transformRequest{Op: "xor-encrypt", Text: "hi"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown op",
			req:        transformRequest{Op: "rot26"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/transform", tt.req)
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantResult != "" {
				var tr transformResponse
				decodeTo(t, resp, &tr)
				if tr.Result != tt.wantResult {
					t.Errorf("result = %q, want %q", tr.Result, tt.wantResult)
				}
			}
		})
	}
}

func TestTransformStrength(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/transform", transformRequest{Op: "strength", Text: "Tr0ub4dor&3"})
	var tr transformResponse
	decodeTo(t, resp, &tr)
	if tr.Score <= 0 || tr.Label == "" {
		t.Errorf("strength response = %+v", tr)
	}
}
