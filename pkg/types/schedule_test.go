package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuarterTime(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"00:15": 15,
		"06:30": 390,
		"13:45": 825,
		"23:45": 1425,
	}
	for s, want := range valid {
		got, err := ParseQuarterTime(s)
		require.NoError(t, err, "expected %s to be valid", s)
		assert.Equal(t, want, got, "minutes since midnight for %s", s)
	}

	invalid := []string{
		"", "7", "07:05", "12:01", "12:59", "24:00", "25:15", "ab:cd", "12:00:00", "12-15",
	}
	for _, s := range invalid {
		_, err := ParseQuarterTime(s)
		assert.Error(t, err, "expected %s to be rejected", s)
	}
}

func TestWindowValidate(t *testing.T) {
	t.Run("start before end", func(t *testing.T) {
		assert.NoError(t, Window{Start: "01:00", End: "05:30"}.Validate())
	})

	t.Run("inactive all-zero window", func(t *testing.T) {
		assert.NoError(t, Window{Start: "00:00", End: "00:00"}.Validate())
	})

	t.Run("start after end", func(t *testing.T) {
		assert.Error(t, Window{Start: "06:00", End: "05:00"}.Validate())
	})

	t.Run("start equals end", func(t *testing.T) {
		assert.Error(t, Window{Start: "05:00", End: "05:00"}.Validate())
	})

	t.Run("bad minutes", func(t *testing.T) {
		assert.Error(t, Window{Start: "01:10", End: "02:00"}.Validate())
		assert.Error(t, Window{Start: "01:00", End: "02:20"}.Validate())
	})
}

func TestValidateCutoffSOC(t *testing.T) {
	for _, soc := range []float64{0, 10, 50.5, 100} {
		assert.NoError(t, ValidateCutoffSOC(soc), "soc %g", soc)
	}
	for _, soc := range []float64{-1, -0.1, 100.1, 150} {
		assert.Error(t, ValidateCutoffSOC(soc), "soc %g", soc)
	}
}

func TestValidateSchedule(t *testing.T) {
	p1 := Window{Start: "01:00", End: "05:00"}
	p2 := Window{Start: "00:00", End: "00:00"}

	require.NoError(t, ValidateSchedule(p1, p2, 90))

	err := ValidateSchedule(Window{Start: "01:07", End: "05:00"}, p2, 90)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period 1")

	err = ValidateSchedule(p1, Window{Start: "09:00", End: "08:00"}, 90)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period 2")

	assert.Error(t, ValidateSchedule(p1, p2, 101))
}

func TestValidateQueryDate(t *testing.T) {
	assert.NoError(t, ValidateQueryDate("2025-06-01"))
	assert.Error(t, ValidateQueryDate("06/01/2025"))
	assert.Error(t, ValidateQueryDate("2025-13-01"))
	assert.Error(t, ValidateQueryDate("yesterday"))
}
