// Package json is the JSON codec used to load flag and option
// configurations. It is a thin facade over [sonic].
package json

import (
	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Marshal encodes a Go value as JSON with sonic's standard-library compatible config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes a JSON payload into the provided destination.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// UnmarshalObject decodes a JSON object into a generic map. Numbers decode
// as float64. ok is false when data is valid JSON but not an object.
func UnmarshalObject(data []byte) (obj map[string]any, ok bool, err error) {
	var v any
	if err := Unmarshal(data, &v); err != nil {
		return nil, false, err
	}

	obj, ok = v.(map[string]any)
	return obj, ok, nil
}
