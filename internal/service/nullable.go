package service

import "encoding/json"

// Nullable distinguishes an absent JSON field from an explicit null in
// partial update requests. Set reports the field was present; Valid
// reports it carried a non-null value.
type Nullable[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// UnmarshalJSON is only called when the field is present in the payload,
// so Set is always true here. A JSON null leaves Valid false.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil when the field was null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
