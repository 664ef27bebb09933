package postgres

import "encoding/json"

// marshalJSONB encodes a value for a JSONB column. A nil slice is stored as an
// empty JSON array rather than SQL NULL so scans always round-trip.
func marshalJSONB(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

// unmarshalJSONB decodes a JSONB column into dst, tolerating NULL columns.
func unmarshalJSONB(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
