package auth

import (
	"encoding/json"
	"fmt"
)

// jsonCodec replaces Connect's protobuf-only JSON codec so the service can
// exchange plain Go structs.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}

	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("unmarshal message: %w", err)
	}

	return nil
}
