package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedInput, "test message: %s", "value")

	if err.Code != ErrCodeMalformedInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "MALFORMED_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeStorage, cause, "failed to insert")

	if err.Code != ErrCodeStorage {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStorage)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeMalformedInput, "test"),
			code:     ErrCodeMalformedInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeMalformedInput, "test"),
			code:     ErrCodeNotFound,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeCapacityExceeded, errors.New("x"), "test"),
			code:     ErrCodeCapacityExceeded,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if code := GetCode(New(ErrCodePayloadNotFound, "test")); code != ErrCodePayloadNotFound {
		t.Errorf("GetCode() = %v, want %v", code, ErrCodePayloadNotFound)
	}

	if code := GetCode(errors.New("plain")); code != "" {
		t.Errorf("GetCode() = %v, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidKey, "key cannot be empty")
	if msg := UserMessage(err); msg != "key cannot be empty" {
		t.Errorf("UserMessage() = %v, want %v", msg, "key cannot be empty")
	}

	plain := errors.New("plain error")
	if msg := UserMessage(plain); msg != "plain error" {
		t.Errorf("UserMessage() = %v, want %v", msg, "plain error")
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid short key", "secret", false},
		{"single character", "k", false},
		{"symbols allowed", "p@$$w0rd!", false},
		{"empty key", "", true},
		{"too long", string(make([]byte, 257)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidKey) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidKey)
			}
		})
	}
}

func TestValidateShift(t *testing.T) {
	for _, shift := range []int{0, 1, 3, 13, 25, 26} {
		if err := ValidateShift(shift); err != nil {
			t.Errorf("ValidateShift(%d) = %v, want nil", shift, err)
		}
	}
	for _, shift := range []int{-1, 27, 100} {
		if err := ValidateShift(shift); err == nil {
			t.Errorf("ValidateShift(%d) = nil, want error", shift)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple name", "alice", false},
		{"with digits", "bob42", false},
		{"empty", "", true},
		{"with space", "alice b", true},
		{"with colon", "alice:b", true},
		{"with slash", "alice/b", true},
		{"control character", "alice\x01", true},
		{"too long", string(make([]byte, 65)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}
