package books

import "encoding/json"

// Optional is a JSON field that distinguishes "absent from the request"
// from "present with null". Absent fields keep their stored value on
// partial updates; a present null clears nullable fields.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}
