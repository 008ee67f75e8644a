package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cipherchat/cipherchat/pkg/chat"
	"github.com/cipherchat/cipherchat/pkg/cipher"
	"github.com/cipherchat/cipherchat/pkg/errors"
)

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps err to an HTTP status via its error code and writes the
// structured error payload.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError

	switch {
	case err == chat.ErrNotFound, code == errors.ErrCodeNotFound:
		code = errors.ErrCodeNotFound
		status = http.StatusNotFound
	case code == errors.ErrCodeMalformedInput,
		code == errors.ErrCodeInvalidInput,
		code == errors.ErrCodeInvalidKey,
		code == errors.ErrCodeInvalidShift,
		code == errors.ErrCodeInvalidScheme,
		code == errors.ErrCodeCapacityExceeded,
		code == errors.ErrCodePayloadNotFound,
		code == errors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case code == "":
		code = errors.ErrCodeInternal
	}

	s.writeJSON(w, status, errorResponse{Code: string(code), Error: errors.UserMessage(err)})
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListChats(w http.ResponseWriter, r *http.Request) {
	participant := r.URL.Query().Get("participant")
	chats, err := s.svc.Chats(r.Context(), participant)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if chats == nil {
		chats = []chat.Chat{}
	}
	s.writeJSON(w, http.StatusOK, chats)
}

func (s *Server) handleCreateChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Participants []string `json:"participants"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	c, err := s.svc.CreateChat(r.Context(), req.Participants)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	key := r.URL.Query().Get("key")

	msgs, err := s.svc.Messages(r.Context(), chatID, key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if msgs == nil {
		msgs = []chat.Message{}
	}
	s.writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sender string `json:"sender"`
		Body   string `json:"body"`
		Scheme string `json:"scheme"`
		Shift  int    `json:"shift"`
		Key    string `json:"key"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	m, err := s.svc.Send(r.Context(), chat.SendInput{
		ChatID: chi.URLParam(r, "chatID"),
		Sender: req.Sender,
		Body:   req.Body,
		Scheme: req.Scheme,
		Shift:  req.Shift,
		Key:    req.Key,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Profile(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p chat.Profile
	if err := decodeBody(r, &p); err != nil {
		s.writeError(w, err)
		return
	}
	p.Username = chi.URLParam(r, "username")

	if err := s.svc.SaveProfile(r.Context(), &p); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// transformRequest is the one-shot transform endpoint input. Shift is a
// pointer so an explicit 0 (identity) is distinguishable from an absent
// field, which falls back to the default shift.
type transformRequest struct {
	Op    string `json:"op"`
	Text  string `json:"text"`
	Key   string `json:"key"`
	Shift *int   `json:"shift,omitempty"`
}

// transformResponse carries the transform result. Score and Label are only
// set for the strength op.
type transformResponse struct {
	Result string `json:"result"`
	Score  int    `json:"score,omitempty"`
	Label  string `json:"label,omitempty"`
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	shift := cipher.DefaultShift
	if req.Shift != nil {
		shift = *req.Shift
	}

	var resp transformResponse
	var err error
	switch req.Op {
	case "caesar-encode":
		resp.Result = cipher.CaesarEncode(req.Text, shift)
	case "caesar-decode":
		resp.Result = cipher.CaesarDecode(req.Text, shift)
	case "xor-encrypt":
		resp.Result, err = cipher.XOREncrypt(req.Text, req.Key)
	case "xor-decrypt":
		resp.Result, err = cipher.XORDecrypt(req.Text, req.Key)
	case "base64-encode":
		resp.Result = cipher.Base64Encode(req.Text)
	case "base64-decode":
		resp.Result, err = cipher.Base64Decode(req.Text)
	case "hex-encode":
		resp.Result = cipher.HexEncode(req.Text)
	case "hex-decode":
		resp.Result, err = cipher.HexDecode(req.Text)
	case "binary-encode":
		resp.Result = cipher.BinaryEncode(req.Text)
	case "binary-decode":
		resp.Result, err = cipher.BinaryDecode(req.Text)
	case "reverse":
		resp.Result = cipher.Reverse(req.Text)
	case "detect":
		resp.Result = cipher.Detect(req.Text)
	case "fingerprint":
		resp.Result = cipher.Fingerprint(req.Text)
	case "strength":
		resp.Score, resp.Label = cipher.Strength(req.Text)
		resp.Result = resp.Label
	default:
		err = errors.New(errors.ErrCodeUnsupported, "unknown transform op %q", req.Op)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}
