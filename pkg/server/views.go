package server

import (
	"github.com/alphabridge/alphabridge/pkg/alphaess"
	"github.com/alphabridge/alphabridge/pkg/types"
)

func powerUnits() map[string]string {
	return map[string]string{"power": "W", "soc": "%"}
}

func scheduleUnits() map[string]string {
	return map[string]string{"soc": "%", "time": "HH:MM"}
}

// structureSnapshot maps the vendor snapshot to descriptive field names.
func structureSnapshot(d alphaess.LastPowerData) types.Snapshot {
	return types.Snapshot{
		Solar: types.SolarSnapshot{
			TotalPower: d.PPV,
			Panels: types.PanelPowers{
				Panel1: d.PPVDetail.PPV1,
				Panel2: d.PPVDetail.PPV2,
				Panel3: d.PPVDetail.PPV3,
				Panel4: d.PPVDetail.PPV4,
			},
		},
		Battery: types.BatterySnapshot{
			StateOfCharge: d.SOC,
			Power:         d.PBat,
		},
		Grid: types.GridSnapshot{
			TotalPower: d.PGrid,
			Phases: types.GridPhases{
				L1Power: d.PGridDetail.PMeterL1,
				L2Power: d.PGridDetail.PMeterL2,
				L3Power: d.PGridDetail.PMeterL3,
			},
		},
		Load: types.LoadSnapshot{
			TotalPower: d.PLoad,
			Phases: types.LoadPhases{
				L1Real: d.PRealL1,
				L2Real: d.PRealL2,
				L3Real: d.PRealL3,
			},
		},
		EVCharging: types.EVSnapshot{
			TotalPower: d.PEV,
			Stations: types.EVStations{
				EV1: d.PEVDetail.EV1Power,
				EV2: d.PEVDetail.EV2Power,
				EV3: d.PEVDetail.EV3Power,
				EV4: d.PEVDetail.EV4Power,
			},
		},
		Units: powerUnits(),
	}
}

// configPeriod builds one schedule period view. Vendor omits unset times, so
// empty strings normalize to the inactive 00:00 window.
func configPeriod(n int, start, end string) types.ConfigPeriod {
	if start == "" {
		start = "00:00"
	}
	if end == "" {
		end = "00:00"
	}
	return types.ConfigPeriod{
		Period:    n,
		StartTime: start,
		EndTime:   end,
		Active:    start != "00:00" || end != "00:00",
	}
}

// structureChargeConfig maps the vendor grid-charge schedule to the
// structured view.
func structureChargeConfig(cfg alphaess.ChargeConfig) types.ChargeSchedule {
	return types.ChargeSchedule{
		Enabled: cfg.GridCharge != 0,
		Periods: []types.ConfigPeriod{
			configPeriod(1, cfg.TimeChaF1, cfg.TimeChaE1),
			configPeriod(2, cfg.TimeChaF2, cfg.TimeChaE2),
		},
		ChargeLimitSOC: cfg.BatHighCap,
		Units:          scheduleUnits(),
	}
}

// structureDischargeConfig maps the vendor discharge schedule to the
// structured view.
func structureDischargeConfig(cfg alphaess.DischargeConfig) types.DischargeSchedule {
	return types.DischargeSchedule{
		Enabled: cfg.CtrDis != 0,
		Periods: []types.ConfigPeriod{
			configPeriod(1, cfg.TimeDisF1, cfg.TimeDisE1),
			configPeriod(2, cfg.TimeDisF2, cfg.TimeDisE2),
		},
		DischargeLimitSOC: cfg.BatUseCap,
		Units:             scheduleUnits(),
	}
}
