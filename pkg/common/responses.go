package common

import (
	"encoding/json"
	"net/http"
)

// Result is the envelope every endpoint answers with.
// Extra carries endpoint-specific top-level fields (e.g. "tags").
type Result struct {
	Success bool
	Data    interface{}
	Error   string
	Message string
	Code    string
	Extra   map[string]interface{}
}

// OK builds a successful result carrying data.
func OK(data interface{}) Result {
	return Result{Success: true, Data: data}
}

// Fail builds an error result.
func Fail(code, message string) Result {
	return Result{Success: false, Error: message, Code: code}
}

// With attaches a top-level field to the envelope.
func (r Result) With(key string, value interface{}) Result {
	extra := make(map[string]interface{}, len(r.Extra)+1)
	for k, v := range r.Extra {
		extra[k] = v
	}
	extra[key] = value
	r.Extra = extra
	return r
}

// WithMessage sets the human readable message.
func (r Result) WithMessage(message string) Result {
	r.Message = message
	return r
}

// MarshalJSON flattens the envelope. Reserved keys win over Extra.
func (r Result) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Extra)+5)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["success"] = r.Success
	if r.Data != nil {
		out["data"] = r.Data
	}
	if r.Error != "" {
		out["error"] = r.Error
	}
	if r.Message != "" {
		out["message"] = r.Message
	}
	if r.Code != "" {
		out["code"] = r.Code
	}
	return json.Marshal(out)
}

// Write serializes a result. It is the only place responses get encoded.
func Write(w http.ResponseWriter, status int, result Result) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(result)
}

// StandardErrorCodes defines common error codes
var StandardErrorCodes = struct {
	ValidationError    string
	NotFound           string
	Unauthorized       string
	Forbidden          string
	Conflict           string
	InternalError      string
	BadRequest         string
	TooManyRequests    string
	ServiceUnavailable string
}{
	ValidationError:    "VALIDATION_ERROR",
	NotFound:           "NOT_FOUND",
	Unauthorized:       "UNAUTHORIZED",
	Forbidden:          "FORBIDDEN",
	Conflict:           "CONFLICT",
	InternalError:      "INTERNAL_ERROR",
	BadRequest:         "BAD_REQUEST",
	TooManyRequests:    "TOO_MANY_REQUESTS",
	ServiceUnavailable: "SERVICE_UNAVAILABLE",
}

// ParseJSONBody parses JSON request body with size limit
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}
