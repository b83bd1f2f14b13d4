// Package codec converts values to and from their JSON text representation.
package codec

import "encoding/json"

// ToJSON renders a value as JSON text.
func ToJSON[T any](v T) (string, error) {
	jsn, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(jsn), nil
}

// FromJSON parses JSON text into a value of type T. On malformed input the
// zero value for T is returned together with the error.
func FromJSON[T any](jsn string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(jsn), &v); err != nil {
		var none T
		return none, err
	}
	return v, nil
}
