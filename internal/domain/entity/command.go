package entity

import (
	"encoding/json"
	"fmt"
)

// CommandEnvelope is the inbound web -> native message.
// Both fields stay raw so an absent field can be told apart from null.
type CommandEnvelope struct {
	Type    json.RawMessage `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// CommandType decodes the type field. present is false when the field is
// absent; a present value that is not a string is an error.
func (e CommandEnvelope) CommandType() (name string, present bool, err error) {
	if len(e.Type) == 0 {
		return "", false, nil
	}
	var v any
	if err := json.Unmarshal(e.Type, &v); err != nil {
		return "", true, err
	}
	s, ok := v.(string)
	if !ok {
		return "", true, fmt.Errorf("command type must be a string, got %s", e.Type)
	}
	return s, true, nil
}

// PayloadJSON returns the payload as serialized JSON, "" when absent.
// An explicit null is passed on as "null".
func (e CommandEnvelope) PayloadJSON() string {
	return string(e.Payload)
}

// CommandResponse is the conventional reply envelope produced by command handlers.
type CommandResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
	State   *AppState `json:"state,omitempty"`
}

// JSON serializes the response. Marshalling a CommandResponse cannot fail.
func (r CommandResponse) JSON() string {
	data, err := json.Marshal(r)
	if err != nil {
		return `{"success":false,"error":"response encoding failed"}`
	}
	return string(data)
}

// SuccessResponse returns the serialized `{"success":true}` envelope.
func SuccessResponse() string {
	return CommandResponse{Success: true}.JSON()
}

// ErrorResponse returns a serialized failure envelope with the given message.
func ErrorResponse(msg string) string {
	return CommandResponse{Success: false, Error: msg}.JSON()
}
