package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/kova98/redd/enums"
)

// ConstructionError is returned when a variant constructor cannot interpret
// the attributes it was given.
type ConstructionError struct {
	Kind       enums.Kind
	Attributes Attributes
	Err        error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct %q: %v", e.Kind, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Materialize turns a decoded JSON value into a typed thing. Bodies that are
// not JSON objects yield a nil thing and a nil error.
func Materialize(session Session, body any) (Thing, error) {
	envelope, ok := asMap(body)
	if !ok {
		return nil, nil
	}

	kind, _ := envelope["kind"].(string)
	attrs := flattenEnvelope(envelope)

	thing, err := Resolve(enums.Kind(kind))(session, attrs)
	if err != nil {
		var cerr *ConstructionError
		if errors.As(err, &cerr) {
			return nil, err
		}
		return nil, &ConstructionError{Kind: enums.Kind(kind), Attributes: attrs, Err: err}
	}
	return thing, nil
}

// MaterializeJSON decodes raw and materializes the result. Empty bodies
// yield a nil thing.
func MaterializeJSON(session Session, raw []byte) (Thing, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Wrap(err, "decode response body")
	}
	return Materialize(session, body)
}

// flattenEnvelope merges {kind, data: {...}} into {kind, ...}. The outer
// kind always wins and the input maps are left untouched.
func flattenEnvelope(envelope map[string]any) Attributes {
	source := envelope
	if data, ok := asMap(envelope["data"]); ok {
		source = data
	}
	attrs := Attributes(source).Clone()
	attrs["kind"] = envelope["kind"]
	return attrs
}

// materializeChild is used by constructors for nested envelopes.
func materializeChild(session Session, value any) (Thing, error) {
	thing, err := Materialize(session, value)
	if err != nil {
		return nil, err
	}
	if thing == nil {
		return nil, errors.Errorf("expected object, got %T", value)
	}
	return thing, nil
}

func materializeChildren(session Session, values []any) ([]Thing, error) {
	children := make([]Thing, 0, len(values))
	for i, v := range values {
		child, err := materializeChild(session, v)
		if err != nil {
			return nil, errors.Wrapf(err, "child %d", i)
		}
		children = append(children, child)
	}
	return children, nil
}
