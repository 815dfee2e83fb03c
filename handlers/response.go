package handlers

import (
	"encoding/json"
	"net/http"
)

// Error codes surfaced in the response envelope.
const (
	CodeInvalidBody   = "INVALID_BODY"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeServerError   = "SERVER_ERROR"
)

// Response is the envelope every endpoint returns.
type Response struct {
	OK   bool   `json:"ok"`
	Data any    `json:"data,omitempty"`
	Code string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{OK: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, Response{OK: false, Code: code})
}
