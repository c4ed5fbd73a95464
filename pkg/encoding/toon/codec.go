package toon

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alpkeskin/gotoon"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOON Format = "toon"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatTOON:
		return FormatTOON, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Codec wraps gotoon serialization with JSON fallback.
type Codec struct {
	useToon bool
	indent  bool
}

// New creates a codec that prefers TOON for compact serialization.
func New(useToon bool) *Codec {
	return &Codec{useToon: useToon}
}

// ForFormat creates a codec for f.
func ForFormat(f Format) *Codec {
	return New(f == FormatTOON)
}

// Indented returns a copy of c that pretty-prints JSON output.
func (c *Codec) Indented() *Codec {
	cp := *c
	cp.indent = true
	return &cp
}

// Marshal encodes v into TOON (or JSON when disabled). Values pass through
// JSON first so struct tags decide key names in both encodings.
func (c *Codec) Marshal(v any) ([]byte, error) {
	if !c.useToon || v == nil {
		if c.indent {
			return json.MarshalIndent(v, "", "  ")
		}
		return json.Marshal(v)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("toon encode: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("toon encode: %w", err)
	}
	encoded, err := gotoon.Encode(generic)
	if err != nil {
		return nil, fmt.Errorf("toon encode: %w", err)
	}
	return []byte(encoded), nil
}

// Unmarshal decodes JSON payloads back into Go values. TOON is designed for
// one-way transmission to models, so recovery always goes through JSON.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
