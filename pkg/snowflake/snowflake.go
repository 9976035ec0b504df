// Package snowflake implements the 64-bit unsigned identifier used by
// Discord for every addressable entity (guilds, channels, users, messages).
// On the wire a snowflake is a decimal string; in memory it is a uint64.
package snowflake

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// ID is a Discord snowflake. The zero value means "unset".
type ID uint64

// discordEpoch is the first millisecond of 2015 UTC, the origin of the
// 42-bit timestamp packed into the top of every snowflake.
const discordEpoch = 1420070400000

const timestampShift = 22

// Parse converts the wire (decimal string) form of a snowflake to an ID.
func Parse(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", s, err)
	}
	return ID(n), nil
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == 0
}

// String returns the decimal form used on the wire.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Time returns the creation time encoded in the snowflake's upper 42 bits.
func (id ID) Time() time.Time {
	ms := int64(id>>timestampShift) + discordEpoch
	return time.UnixMilli(ms).UTC()
}

// MarshalJSON emits the snowflake as a decimal string, matching the wire
// format Discord uses to avoid precision loss in JavaScript clients.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts a decimal string, a bare number, null, or an empty
// string. Absent and null both decode to the zero ID.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
