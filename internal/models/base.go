// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// UintSlice is a JSONB column holding an ordered list of record IDs.
// Order is significant: a team roster stored this way defines the batting
// order.
type UintSlice []uint

func (s UintSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the slice.
func (s *UintSlice) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("UintSlice: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}
