package server

import (
	"github.com/samber/lo"

	"github.com/alphabridge/alphabridge/pkg/alphaess"
	"github.com/alphabridge/alphabridge/pkg/types"
)

// sampleIntervalMinutes is the vendor's fixed sampling interval for the
// one-day power series.
const sampleIntervalMinutes = 10

// structureTimeSeries converts vendor power records into the renamed series
// plus per-field summary statistics (peaks, minimums, averages and kWh
// totals derived from the fixed sampling interval).
func structureTimeSeries(records []alphaess.PowerRecord) types.TimeSeries {
	if len(records) == 0 {
		return types.TimeSeries{Series: []types.TimeSeriesEntry{}}
	}

	series := lo.Map(records, func(r alphaess.PowerRecord, _ int) types.TimeSeriesEntry {
		return types.TimeSeriesEntry{
			Timestamp:  r.UploadTime,
			SolarPower: r.PPV,
			LoadPower:  r.Load,
			BatterySOC: r.CBat,
			GridFeedIn: r.FeedIn,
			GridImport: r.GridCharge,
			EVCharging: r.PChargingPile,
		}
	})

	solar := lo.Map(series, func(e types.TimeSeriesEntry, _ int) float64 { return e.SolarPower })
	loads := lo.Map(series, func(e types.TimeSeriesEntry, _ int) float64 { return e.LoadPower })
	soc := lo.Map(series, func(e types.TimeSeriesEntry, _ int) float64 { return e.BatterySOC })
	feedIn := lo.Map(series, func(e types.TimeSeriesEntry, _ int) float64 { return e.GridFeedIn })

	summary := &types.TimeSeriesSummary{
		TotalRecords:    len(series),
		IntervalMinutes: sampleIntervalMinutes,
		TimeSpanHours:   float64(len(series)*sampleIntervalMinutes) / 60,
		Solar: types.SolarSummary{
			PeakPower:          lo.Max(solar),
			AvgPower:           mean(solar),
			TotalGenerationKWH: wattSamplesToKWH(solar),
		},
		Battery: types.BatterySummary{
			MaxSOC: lo.Max(soc),
			MinSOC: lo.Min(soc),
			AvgSOC: mean(soc),
		},
		Grid: types.GridSummary{
			TotalFeedInKWH: wattSamplesToKWH(feedIn),
			PeakFeedIn:     lo.Max(feedIn),
		},
		Load: types.LoadSummary{
			PeakPower:           lo.Max(loads),
			AvgPower:            mean(loads),
			TotalConsumptionKWH: wattSamplesToKWH(loads),
		},
	}

	return types.TimeSeries{Series: series, Summary: summary}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return lo.Sum(vals) / float64(len(vals))
}

// wattSamplesToKWH converts watt samples taken every 10 minutes into
// kilowatt-hours.
func wattSamplesToKWH(vals []float64) float64 {
	return lo.Sum(vals) * sampleIntervalMinutes / 60 / 1000
}
