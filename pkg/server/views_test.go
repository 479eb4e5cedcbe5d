package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphabridge/alphabridge/pkg/alphaess"
)

func TestStructureSnapshot(t *testing.T) {
	snap := structureSnapshot(alphaess.LastPowerData{
		PPV:         3500,
		PLoad:       800,
		SOC:         87.5,
		PGrid:       -1500,
		PBat:        -1200,
		PEV:         0,
		PRealL1:     800,
		PPVDetail:   alphaess.PVDetail{PPV1: 1750, PPV2: 1750},
		PGridDetail: alphaess.GridDetail{PMeterL1: -1500},
	})

	assert.Equal(t, 3500.0, snap.Solar.TotalPower)
	assert.Equal(t, 1750.0, snap.Solar.Panels.Panel2)
	assert.Equal(t, 87.5, snap.Battery.StateOfCharge)
	assert.Equal(t, -1200.0, snap.Battery.Power)
	assert.Equal(t, -1500.0, snap.Grid.TotalPower)
	assert.Equal(t, -1500.0, snap.Grid.Phases.L1Power)
	assert.Equal(t, 800.0, snap.Load.Phases.L1Real)
	assert.Equal(t, "W", snap.Units["power"])
	assert.Equal(t, "%", snap.Units["soc"])
}

func TestStructureChargeConfig(t *testing.T) {
	view := structureChargeConfig(alphaess.ChargeConfig{
		GridCharge: 1,
		TimeChaF1:  "01:00",
		TimeChaE1:  "05:00",
		TimeChaF2:  "00:00",
		TimeChaE2:  "00:00",
		BatHighCap: 90,
	})

	assert.True(t, view.Enabled)
	assert.Equal(t, 90.0, view.ChargeLimitSOC)
	require.Len(t, view.Periods, 2)
	assert.True(t, view.Periods[0].Active)
	assert.Equal(t, "01:00", view.Periods[0].StartTime)
	assert.False(t, view.Periods[1].Active, "00:00 to 00:00 window is inactive")
}

func TestStructureDischargeConfig(t *testing.T) {
	view := structureDischargeConfig(alphaess.DischargeConfig{
		CtrDis:    0,
		TimeDisF1: "18:00",
		TimeDisE1: "22:30",
		BatUseCap: 15,
	})

	assert.False(t, view.Enabled)
	assert.Equal(t, 15.0, view.DischargeLimitSOC)
	require.Len(t, view.Periods, 2)
	assert.True(t, view.Periods[0].Active)
	// vendor omitted the second window entirely
	assert.Equal(t, "00:00", view.Periods[1].StartTime)
	assert.Equal(t, "00:00", view.Periods[1].EndTime)
	assert.False(t, view.Periods[1].Active)
}
