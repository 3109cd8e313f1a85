package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

var _ connect.Codec = Codec{}

// Codec encodes plain Go structs as JSON for Connect.
// It replaces the protobuf JSON codec registered under the same name.
type Codec struct{}

// Name returns "json", matching the application/json content type.
func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
