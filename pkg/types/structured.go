package types

// SystemInfo describes one registered system in the structured system list.
type SystemInfo struct {
	Serial string `json:"serial"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// SystemList is the structured view returned by the system list tool.
type SystemList struct {
	RecommendedSerial string       `json:"recommended_serial,omitempty"`
	Systems           []SystemInfo `json:"systems"`
	RequiresSelection bool         `json:"requires_selection"`
}

// TimeSeriesEntry is one renamed sample of the one-day power series.
type TimeSeriesEntry struct {
	Timestamp  string  `json:"timestamp"`
	SolarPower float64 `json:"solar_power"`
	LoadPower  float64 `json:"load_power"`
	BatterySOC float64 `json:"battery_soc"`
	GridFeedIn float64 `json:"grid_feedin"`
	GridImport float64 `json:"grid_import"`
	EVCharging float64 `json:"ev_charging"`
}

// SolarSummary aggregates solar production over a series.
type SolarSummary struct {
	PeakPower          float64 `json:"peak_power"`
	AvgPower           float64 `json:"avg_power"`
	TotalGenerationKWH float64 `json:"total_generation_kwh"`
}

// BatterySummary aggregates battery state of charge over a series.
type BatterySummary struct {
	MaxSOC float64 `json:"max_soc"`
	MinSOC float64 `json:"min_soc"`
	AvgSOC float64 `json:"avg_soc"`
}

// GridSummary aggregates grid feed-in over a series.
type GridSummary struct {
	TotalFeedInKWH float64 `json:"total_feedin_kwh"`
	PeakFeedIn     float64 `json:"peak_feedin"`
}

// LoadSummary aggregates household consumption over a series.
type LoadSummary struct {
	PeakPower           float64 `json:"peak_power"`
	AvgPower            float64 `json:"avg_power"`
	TotalConsumptionKWH float64 `json:"total_consumption_kwh"`
}

// TimeSeriesSummary carries the derived statistics for a one-day series.
type TimeSeriesSummary struct {
	TotalRecords    int            `json:"total_records"`
	IntervalMinutes int            `json:"interval_minutes"`
	TimeSpanHours   float64        `json:"time_span_hours"`
	Solar           SolarSummary   `json:"solar"`
	Battery         BatterySummary `json:"battery"`
	Grid            GridSummary    `json:"grid"`
	Load            LoadSummary    `json:"load"`
}

// TimeSeries is the structured view of a one-day power series.
type TimeSeries struct {
	Series  []TimeSeriesEntry  `json:"series"`
	Summary *TimeSeriesSummary `json:"summary,omitempty"`
}

// ConfigPeriod is one charge or discharge window of a schedule. A window of
// 00:00 to 00:00 is inactive.
type ConfigPeriod struct {
	Period    int    `json:"period"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

// ChargeSchedule is the structured view of the grid-charge configuration.
type ChargeSchedule struct {
	Enabled        bool              `json:"enabled"`
	Periods        []ConfigPeriod    `json:"periods"`
	ChargeLimitSOC float64           `json:"charge_limit_soc"`
	Units          map[string]string `json:"units"`
}

// DischargeSchedule is the structured view of the discharge configuration.
type DischargeSchedule struct {
	Enabled           bool              `json:"enabled"`
	Periods           []ConfigPeriod    `json:"periods"`
	DischargeLimitSOC float64           `json:"discharge_limit_soc"`
	Units             map[string]string `json:"units"`
}

// PanelPowers holds per-string PV power.
type PanelPowers struct {
	Panel1 float64 `json:"panel_1"`
	Panel2 float64 `json:"panel_2"`
	Panel3 float64 `json:"panel_3"`
	Panel4 float64 `json:"panel_4"`
}

// SolarSnapshot is the live solar section of a snapshot.
type SolarSnapshot struct {
	TotalPower float64     `json:"total_power"`
	Panels     PanelPowers `json:"panels"`
}

// BatterySnapshot is the live battery section of a snapshot. Power is
// positive while charging and negative while discharging.
type BatterySnapshot struct {
	StateOfCharge float64 `json:"state_of_charge"`
	Power         float64 `json:"power"`
}

// GridPhases holds per-phase meter power.
type GridPhases struct {
	L1Power float64 `json:"l1_power"`
	L2Power float64 `json:"l2_power"`
	L3Power float64 `json:"l3_power"`
}

// GridSnapshot is the live grid section of a snapshot. TotalPower is positive
// while importing and negative while exporting.
type GridSnapshot struct {
	TotalPower float64    `json:"total_power"`
	Phases     GridPhases `json:"phases"`
}

// LoadPhases holds per-phase real load power.
type LoadPhases struct {
	L1Real float64 `json:"l1_real"`
	L2Real float64 `json:"l2_real"`
	L3Real float64 `json:"l3_real"`
}

// LoadSnapshot is the live household load section of a snapshot.
type LoadSnapshot struct {
	TotalPower float64    `json:"total_power"`
	Phases     LoadPhases `json:"phases"`
}

// EVStations holds per-charger power.
type EVStations struct {
	EV1 float64 `json:"ev1"`
	EV2 float64 `json:"ev2"`
	EV3 float64 `json:"ev3"`
	EV4 float64 `json:"ev4"`
}

// EVSnapshot is the live EV charging section of a snapshot.
type EVSnapshot struct {
	TotalPower float64    `json:"total_power"`
	Stations   EVStations `json:"stations"`
}

// Snapshot is the structured view of the live power data.
type Snapshot struct {
	Solar      SolarSnapshot     `json:"solar"`
	Battery    BatterySnapshot   `json:"battery"`
	Grid       GridSnapshot      `json:"grid"`
	Load       LoadSnapshot      `json:"load"`
	EVCharging EVSnapshot        `json:"ev_charging"`
	Units      map[string]string `json:"units"`
}
