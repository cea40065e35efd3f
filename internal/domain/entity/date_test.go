package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2019, time.March, 2)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2019-03-02"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, d.Equal(parsed.Time))
}

func TestParseDate_RejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2019-13-02", "02/03/2019"} {
		_, err := ParseDate(input)
		assert.Error(t, err, input)
	}
}

func TestDate_UnmarshalJSON_RejectsNonString(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`20190302`), &d))
}

func TestDate_UnmarshalParam(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalParam("2021-11-05"))
	assert.Equal(t, "2021-11-05", d.String())

	assert.Error(t, d.UnmarshalParam("05-11-2021"))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2019, time.March, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2019-03-02", d.String())

	require.NoError(t, d.Scan("2019-03-02"))
	assert.Equal(t, "2019-03-02", d.String())

	assert.Error(t, d.Scan(42))
}
