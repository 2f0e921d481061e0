package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a scalar the API sends either as a JSON number or as a
// numeric string ("120", "0", "1650000000"). The raw text is kept as-is.
type Number string

// UnmarshalJSON accepts strings, numbers and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("number: unexpected value %s", data)
	}
	*n = Number(num.String())
	return nil
}

// Int64 returns the integer value, or 0 when empty or not numeric.
// Fractional values are truncated.
func (n Number) Int64() int64 {
	if n == "" {
		return 0
	}
	if v, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(string(n), 64); err == nil {
		return int64(f)
	}
	return 0
}

// Float64 returns the floating point value, or 0 when empty or not numeric.
func (n Number) Float64() float64 {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0
	}
	return f
}

// String returns the raw text.
func (n Number) String() string {
	return string(n)
}
