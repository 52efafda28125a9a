// Package source contains RecordSource implementations that fetch the raw
// store list over HTTP or from a local JSON file.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/example/storefinder/internal/core/record"
)

// maxPayloadBytes bounds a record payload; larger bodies are a parse error.
const maxPayloadBytes = 64 << 20

// DecodeRecords decodes a JSON array of store objects. Unrecognized fields
// are ignored; missing or null fields decode as empty strings. Anything else
// (not an array, non-object elements, non-string fields, trailing data) is a
// parse LoadError attributed to source.
func DecodeRecords(r io.Reader, source string) ([]record.Record, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPayloadBytes+1))
	if err != nil {
		return nil, record.NewLoadError(record.LoadErrorNetwork, source, fmt.Errorf("failed to read payload: %w", err))
	}
	if len(data) > maxPayloadBytes {
		return nil, record.NewLoadError(record.LoadErrorParse, source, fmt.Errorf("payload exceeds %d bytes", maxPayloadBytes))
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, record.NewLoadError(record.LoadErrorParse, source, errors.New("payload is not a JSON array"))
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var records []record.Record
	if err := dec.Decode(&records); err != nil {
		return nil, record.NewLoadError(record.LoadErrorParse, source, fmt.Errorf("failed to decode records: %w", err))
	}
	if dec.More() {
		return nil, record.NewLoadError(record.LoadErrorParse, source, errors.New("unexpected data after records array"))
	}

	if records == nil {
		records = []record.Record{}
	}
	return records, nil
}
