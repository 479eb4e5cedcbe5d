package server

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/alphabridge/alphabridge/pkg/types"
)

func serialParam() mcp.ToolOption {
	return mcp.WithString("serial",
		mcp.Description("Serial number of the system. Omit to auto-select when exactly one system is registered."),
	)
}

func queryDateParam() mcp.ToolOption {
	return mcp.WithString("query_date",
		mcp.Required(),
		mcp.Description("Date in YYYY-MM-DD format."),
	)
}

func windowParams(direction string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("dp1_start", mcp.Required(),
			mcp.Description("Start of "+direction+" period 1 (HH:MM, minutes must be 00, 15, 30 or 45).")),
		mcp.WithString("dp1_end", mcp.Required(),
			mcp.Description("End of "+direction+" period 1 (HH:MM, minutes must be 00, 15, 30 or 45).")),
		mcp.WithString("dp2_start", mcp.Required(),
			mcp.Description("Start of "+direction+" period 2 (HH:MM, minutes must be 00, 15, 30 or 45).")),
		mcp.WithString("dp2_end", mcp.Required(),
			mcp.Description("End of "+direction+" period 2 (HH:MM, minutes must be 00, 15, 30 or 45).")),
	}
}

func (s *Server) registerTools(m *mcpserver.MCPServer) {
	m.AddTool(mcp.NewTool("authenticate_alphaess",
		mcp.WithDescription("Validate the configured AlphaESS Open API credentials with a round-trip to the vendor."),
	), s.handleAuthenticate)

	m.AddTool(mcp.NewTool("get_ess_list",
		mcp.WithDescription("List the registered AlphaESS systems. Recommends a serial automatically when exactly one system exists."),
	), s.handleESSList)

	m.AddTool(mcp.NewTool("get_last_power_data",
		mcp.WithDescription("Get the latest real-time power snapshot (solar, battery, grid, load, EV) for a system."),
		serialParam(),
	), s.handleLastPowerData)

	m.AddTool(mcp.NewTool("get_one_day_power_data",
		mcp.WithDescription("Get one day of 10-minute power samples for a system, with summary statistics."),
		queryDateParam(),
		serialParam(),
	), s.handleOneDayPower)

	m.AddTool(mcp.NewTool("get_one_date_energy_data",
		mcp.WithDescription("Get the energy totals (generation, charge, discharge, grid import/export) for a system on a date."),
		queryDateParam(),
		serialParam(),
	), s.handleOneDateEnergy)

	m.AddTool(mcp.NewTool("get_alpha_ess_data",
		mcp.WithDescription("Get aggregate statistics for every registered AlphaESS system."),
	), s.handleSumData)

	m.AddTool(mcp.NewTool("get_charge_config",
		mcp.WithDescription("Get the battery grid-charge schedule for a system."),
		serialParam(),
	), s.handleChargeConfig)

	m.AddTool(mcp.NewTool("get_discharge_config",
		mcp.WithDescription("Get the battery discharge schedule for a system."),
		serialParam(),
	), s.handleDischargeConfig)

	m.AddTool(mcp.NewTool("set_battery_charge",
		append(append([]mcp.ToolOption{
			mcp.WithDescription("Set the battery grid-charge schedule for a system."),
			mcp.WithBoolean("enabled", mcp.Required(),
				mcp.Description("Enable charging from the grid.")),
		}, windowParams("charging")...),
			mcp.WithNumber("charge_cutoff_soc", mcp.Required(),
				mcp.Description("Stop charging from the grid at this state of charge (0-100).")),
			serialParam(),
		)...,
	), s.handleSetCharge)

	m.AddTool(mcp.NewTool("set_battery_discharge",
		append(append([]mcp.ToolOption{
			mcp.WithDescription("Set the battery discharge schedule for a system."),
			mcp.WithBoolean("enabled", mcp.Required(),
				mcp.Description("Enable timed battery discharge.")),
		}, windowParams("discharge")...),
			mcp.WithNumber("discharge_cutoff_soc", mcp.Required(),
				mcp.Description("Stop discharging the battery at this state of charge (0-100).")),
			serialParam(),
		)...,
	), s.handleSetDischarge)
}

// result renders an envelope as a JSON tool result. Failures are carried
// inside the envelope, never as MCP protocol errors.
func result(env types.Envelope) *mcp.CallToolResult {
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		fallback := types.NewEnvelope(env.DataType, false, "failed to encode response: "+err.Error())
		b, _ = json.Marshal(fallback)
	}
	return mcp.NewToolResultText(string(b))
}

func failure(kind types.DataKind, msg string) types.Envelope {
	return types.NewEnvelope(kind, false, msg)
}
