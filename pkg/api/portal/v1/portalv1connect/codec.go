package portalv1connect

import "encoding/json"

// Codec marshals portal messages as JSON. It registers under the "json" name
// so Connect clients send application/json and handlers accept it.
type Codec struct{}

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
