package service

import "encoding/json"

// JSONCodec serializes plain Go message structs for Connect. It is registered
// under the "json" name on both handlers and clients, replacing the protobuf
// JSON codec Connect would otherwise use.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
