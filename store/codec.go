package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PeterBowles/Macro-Tracker/macro"
)

// DecodeDocument unwraps a transport payload into the document. The content
// must be base64 (the contents API inserts newlines into long payloads, so
// those are stripped first) wrapping a JSON document with goals and log
// present and correctly nested.
func DecodeDocument(f File) (macro.Data, error) {
	if f.Encoding != "" && f.Encoding != "base64" {
		return macro.Data{}, fmt.Errorf("%w: unsupported content encoding %q", ErrMalformedDocument, f.Encoding)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(f.Content, "\n", ""))
	if err != nil {
		return macro.Data{}, fmt.Errorf("%w: content is not valid base64: %v", ErrMalformedDocument, err)
	}

	// Pointer probe distinguishes "field absent" from "field empty".
	var probe struct {
		Goals *macro.Goals    `json:"goals"`
		Log   *[]macro.DayLog `json:"log"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return macro.Data{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if probe.Goals == nil {
		return macro.Data{}, fmt.Errorf("%w: missing goals", ErrMalformedDocument)
	}
	if probe.Log == nil {
		return macro.Data{}, fmt.Errorf("%w: missing log", ErrMalformedDocument)
	}

	return macro.Data{Goals: *probe.Goals, Log: *probe.Log}, nil
}

// EncodeDocument wraps the document for transport: pretty-printed JSON,
// base64-encoded. Total for any well-formed document.
func EncodeDocument(d macro.Data) (string, error) {
	if d.Log == nil {
		d.Log = []macro.DayLog{}
	}
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	return base64.StdEncoding.EncodeToString(append(raw, '\n')), nil
}
