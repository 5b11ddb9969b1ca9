package types

import "encoding/json"

// Patch is a tri-state JSON field for merge-patch payloads. It distinguishes
// a field that was absent from the payload, one that was an explicit null,
// and one that carried a value. encoding/json only calls UnmarshalJSON for
// keys that appear in the document, so Set is false exactly when the field
// was omitted.
//
//	{}              -> Set=false
//	{"f": null}     -> Set=true,  Valid=false
//	{"f": "x"}      -> Set=true,  Valid=true, Value="x"
//
// An empty string or zero value is a present value, not an omission.
type Patch[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// PatchOf builds a present, non-null field. Mostly useful in tests.
func PatchOf[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Valid: true, Value: v}
}

// PatchNull builds an explicit-null field.
func PatchNull[T any]() Patch[T] {
	return Patch[T]{Set: true}
}

// Present reports whether the field carried a non-null value and should
// overwrite the stored one under merge-patch rules.
func (p Patch[T]) Present() bool {
	return p.Set && p.Valid
}

func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Set = true
	if string(data) == "null" {
		p.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &p.Value); err != nil {
		return err
	}
	p.Valid = true
	return nil
}

func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}
