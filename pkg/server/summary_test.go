package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphabridge/alphabridge/pkg/alphaess"
)

func TestStructureTimeSeries(t *testing.T) {
	t.Run("soc statistics", func(t *testing.T) {
		ts := structureTimeSeries([]alphaess.PowerRecord{
			{UploadTime: "00:00", CBat: 50},
			{UploadTime: "00:15", CBat: 55},
			{UploadTime: "00:30", CBat: 52},
		})

		require.NotNil(t, ts.Summary)
		assert.Equal(t, 55.0, ts.Summary.Battery.MaxSOC)
		assert.Equal(t, 50.0, ts.Summary.Battery.MinSOC)
		assert.InDelta(t, 52.33, ts.Summary.Battery.AvgSOC, 0.01)
	})

	t.Run("renamed series fields", func(t *testing.T) {
		ts := structureTimeSeries([]alphaess.PowerRecord{
			{
				UploadTime:    "2025-06-01 12:00:00",
				PPV:           4200,
				Load:          900,
				CBat:          80,
				FeedIn:        3000,
				GridCharge:    0,
				PChargingPile: 300,
			},
		})

		require.Len(t, ts.Series, 1)
		entry := ts.Series[0]
		assert.Equal(t, "2025-06-01 12:00:00", entry.Timestamp)
		assert.Equal(t, 4200.0, entry.SolarPower)
		assert.Equal(t, 900.0, entry.LoadPower)
		assert.Equal(t, 80.0, entry.BatterySOC)
		assert.Equal(t, 3000.0, entry.GridFeedIn)
		assert.Equal(t, 300.0, entry.EVCharging)
	})

	t.Run("energy totals from 10 minute samples", func(t *testing.T) {
		// six samples of 1000W over 10 minutes each is exactly 1 kWh
		records := make([]alphaess.PowerRecord, 6)
		for i := range records {
			records[i] = alphaess.PowerRecord{PPV: 1000, Load: 500, FeedIn: 250}
		}
		ts := structureTimeSeries(records)

		require.NotNil(t, ts.Summary)
		assert.Equal(t, 6, ts.Summary.TotalRecords)
		assert.Equal(t, 10, ts.Summary.IntervalMinutes)
		assert.Equal(t, 1.0, ts.Summary.TimeSpanHours)
		assert.InDelta(t, 1.0, ts.Summary.Solar.TotalGenerationKWH, 1e-9)
		assert.InDelta(t, 0.5, ts.Summary.Load.TotalConsumptionKWH, 1e-9)
		assert.InDelta(t, 0.25, ts.Summary.Grid.TotalFeedInKWH, 1e-9)
		assert.Equal(t, 1000.0, ts.Summary.Solar.PeakPower)
		assert.Equal(t, 1000.0, ts.Summary.Solar.AvgPower)
	})

	t.Run("empty series", func(t *testing.T) {
		ts := structureTimeSeries(nil)
		assert.Empty(t, ts.Series)
		assert.Nil(t, ts.Summary)
	})
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 2.0, mean([]float64{1, 2, 3}))
}
