package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"

	"github.com/alphabridge/alphabridge/pkg/alphaess"
	"github.com/alphabridge/alphabridge/pkg/types"
)

func (s *Server) handleChargeConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindConfig, "configuration error: "+err.Error())), nil
	}

	serial, systems, err := s.resolveSerial(ctx, api, req.GetString("serial", ""))
	if err != nil {
		return result(availableSystems(failure(types.DataKindConfig, err.Error()), systems)), nil
	}

	cfg, err := api.GetChargeConfig(ctx, serial)
	if err != nil {
		return result(failure(types.DataKindConfig, "error retrieving charge config: "+err.Error()).
			WithSerial(serial)), nil
	}

	env := types.NewEnvelope(types.DataKindConfig, true, "retrieved charge config for "+serial).
		WithSerial(serial).
		WithMeta("config_type", "battery_charging").
		WithMeta("total_periods", 2).
		WithMeta("units", scheduleUnits()).
		WithData(cfg).
		WithStructured(structureChargeConfig(*cfg))
	return result(env), nil
}

func (s *Server) handleDischargeConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindConfig, "configuration error: "+err.Error())), nil
	}

	serial, systems, err := s.resolveSerial(ctx, api, req.GetString("serial", ""))
	if err != nil {
		return result(availableSystems(failure(types.DataKindConfig, err.Error()), systems)), nil
	}

	cfg, err := api.GetDischargeConfig(ctx, serial)
	if err != nil {
		return result(failure(types.DataKindConfig, "error retrieving discharge config: "+err.Error()).
			WithSerial(serial)), nil
	}

	env := types.NewEnvelope(types.DataKindConfig, true, "retrieved discharge config for "+serial).
		WithSerial(serial).
		WithMeta("config_type", "battery_discharging").
		WithMeta("total_periods", 2).
		WithMeta("units", scheduleUnits()).
		WithData(cfg).
		WithStructured(structureDischargeConfig(*cfg))
	return result(env), nil
}

// scheduleArgs extracts and validates the shared update parameters. The
// returned windows are already checked, so no vendor request is issued for
// malformed input.
func scheduleArgs(req mcp.CallToolRequest, cutoffParam string) (enabled bool, p1, p2 types.Window, cutoff float64, err error) {
	if enabled, err = req.RequireBool("enabled"); err != nil {
		return
	}
	if p1.Start, err = req.RequireString("dp1_start"); err != nil {
		return
	}
	if p1.End, err = req.RequireString("dp1_end"); err != nil {
		return
	}
	if p2.Start, err = req.RequireString("dp2_start"); err != nil {
		return
	}
	if p2.End, err = req.RequireString("dp2_end"); err != nil {
		return
	}
	if cutoff, err = req.RequireFloat(cutoffParam); err != nil {
		return
	}
	err = types.ValidateSchedule(p1, p2, cutoff)
	return
}

func (s *Server) handleSetCharge(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabled, p1, p2, cutoff, err := scheduleArgs(req, "charge_cutoff_soc")
	if err != nil {
		return result(failure(types.DataKindConfig, "invalid charge config: "+err.Error())), nil
	}

	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindConfig, "configuration error: "+err.Error())), nil
	}

	serial, systems, err := s.resolveSerial(ctx, api, req.GetString("serial", ""))
	if err != nil {
		return result(availableSystems(failure(types.DataKindConfig, err.Error()), systems)), nil
	}

	cfg := alphaess.ChargeConfig{
		GridCharge: lo.Ternary(enabled, 1, 0),
		TimeChaF1:  p1.Start,
		TimeChaE1:  p1.End,
		TimeChaF2:  p2.Start,
		TimeChaE2:  p2.End,
		BatHighCap: cutoff,
	}
	if err := api.UpdateChargeConfig(ctx, serial, cfg); err != nil {
		return result(failure(types.DataKindConfig, "error setting battery charge config: "+err.Error()).
			WithSerial(serial)), nil
	}

	env := types.NewEnvelope(types.DataKindConfig, true, "updated charge config for "+serial).
		WithSerial(serial).
		WithMeta("config_type", "battery_charging").
		WithStructured(structureChargeConfig(cfg))
	return result(env), nil
}

func (s *Server) handleSetDischarge(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabled, p1, p2, cutoff, err := scheduleArgs(req, "discharge_cutoff_soc")
	if err != nil {
		return result(failure(types.DataKindConfig, "invalid discharge config: "+err.Error())), nil
	}

	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindConfig, "configuration error: "+err.Error())), nil
	}

	serial, systems, err := s.resolveSerial(ctx, api, req.GetString("serial", ""))
	if err != nil {
		return result(availableSystems(failure(types.DataKindConfig, err.Error()), systems)), nil
	}

	cfg := alphaess.DischargeConfig{
		CtrDis:    lo.Ternary(enabled, 1, 0),
		TimeDisF1: p1.Start,
		TimeDisE1: p1.End,
		TimeDisF2: p2.Start,
		TimeDisE2: p2.End,
		BatUseCap: cutoff,
	}
	if err := api.UpdateDischargeConfig(ctx, serial, cfg); err != nil {
		return result(failure(types.DataKindConfig, "error setting battery discharge config: "+err.Error()).
			WithSerial(serial)), nil
	}

	env := types.NewEnvelope(types.DataKindConfig, true, "updated discharge config for "+serial).
		WithSerial(serial).
		WithMeta("config_type", "battery_discharging").
		WithStructured(structureDischargeConfig(cfg))
	return result(env), nil
}
