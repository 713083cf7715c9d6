package api

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID is a record identifier as the API returns it. Deployments disagree on
// whether ids are JSON numbers or strings, so the decoder accepts both and
// normalizes to the string form.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", data, err)
		}
		*id = ID(unquoted)
		return nil
	}
	if _, err := strconv.ParseInt(string(data), 10, 64); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(data)
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the numeric form when the
// id is numeric.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return []byte(strconv.Quote(string(id))), nil
}

// Int converts the id to its numeric form, which several endpoints require
// in request payloads.
func (id ID) Int() (int, error) {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, fmt.Errorf("id %q is not numeric: %w", string(id), err)
	}
	return n, nil
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}
