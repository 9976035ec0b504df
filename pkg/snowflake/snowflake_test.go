package snowflake

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{"Simple ID", "10", ID(10), false},
		{"Real-world ID", "175928847299117063", ID(175928847299117063), false},
		{"Zero", "0", ID(0), false},
		{"Max uint64", "18446744073709551615", ID(18446744073709551615), false},
		{"Empty string", "", 0, true},
		{"Not a number", "abc", 0, true},
		{"Negative", "-5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "175928847299117063", ID(175928847299117063).String())
	assert.Equal(t, "0", ID(0).String())
}

func TestID_IsZero(t *testing.T) {
	assert.True(t, ID(0).IsZero())
	assert.False(t, ID(1).IsZero())
}

func TestID_Time(t *testing.T) {
	// Known snowflake from the platform documentation.
	id := ID(175928847299117063)
	want := time.Date(2016, 4, 30, 11, 18, 25, 796_000_000, time.UTC)
	assert.Equal(t, want, id.Time())
}

func TestID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ID(10))
	require.NoError(t, err)
	assert.Equal(t, `"10"`, string(data))
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{"Quoted string", `"175928847299117063"`, ID(175928847299117063), false},
		{"Bare number", `175928847299117063`, ID(175928847299117063), false},
		{"Null", `null`, ID(0), false},
		{"Empty string", `""`, ID(0), false},
		{"Garbage", `"not-a-number"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestID_JSONRoundTrip(t *testing.T) {
	type wrapper struct {
		ID ID `json:"id"`
	}

	data, err := json.Marshal(wrapper{ID: 12345})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"12345"}`, string(data))

	var back wrapper
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ID(12345), back.ID)
}
