package upstream

import (
	"bytes"
	"encoding/json"
)

// Shape tags how the upstream chose to wrap a payload. Endpoints answer
// either with the entity itself or with an envelope around it; the decoders
// below detect which one arrived and return the unwrapped payload together
// with this tag.
type Shape int

const (
	// ShapeBare means the payload arrived unwrapped.
	ShapeBare Shape = iota
	// ShapeEnveloped means the payload arrived inside a
	// {sucesso, mensagem, dados} envelope.
	ShapeEnveloped
)

// envelope is the wrapper some upstream endpoints put around their payload.
type envelope struct {
	Succeeded *bool           `json:"sucesso"`
	Message   string          `json:"mensagem"`
	Data      json.RawMessage `json:"dados"`
	Total     *int            `json:"total"`
}

// enveloped reports whether the body actually was an envelope rather than a
// bare entity that happens to unmarshal into one.
func (e envelope) enveloped() bool {
	return e.Succeeded != nil || len(e.Data) > 0
}

// decodeOne normalizes a single-entity response body.
func decodeOne[T any](body []byte) (T, Shape, error) {
	var value T

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.enveloped() {
		if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
			return value, ShapeEnveloped, nil
		}

		err := json.Unmarshal(env.Data, &value)
		return value, ShapeEnveloped, err
	}

	err := json.Unmarshal(body, &value)
	return value, ShapeBare, err
}

// decodeList normalizes a list response body. A missing or null list
// degrades to an empty slice, never to nil dereferences downstream.
func decodeList[T any](body []byte) ([]T, Shape, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []T
		err := json.Unmarshal(trimmed, &values)
		return values, ShapeBare, err
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, ShapeEnveloped, err
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return []T{}, ShapeEnveloped, nil
	}

	var values []T
	err := json.Unmarshal(env.Data, &values)
	return values, ShapeEnveloped, err
}

// message extracts the server-supplied message from a response body, if the
// body was an envelope.
func message(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}

	return env.Message
}
