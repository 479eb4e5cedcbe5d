package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"

	"github.com/alphabridge/alphabridge/pkg/alphaess"
	"github.com/alphabridge/alphabridge/pkg/log"
	"github.com/alphabridge/alphabridge/pkg/types"
)

func (s *Server) handleAuthenticate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindSummary, "configuration error: "+err.Error()).
			WithMeta("authenticated", false)), nil
	}

	if err := api.Authenticate(ctx); err != nil {
		return result(failure(types.DataKindSummary, "authentication failed: "+err.Error()).
			WithMeta("authenticated", false)), nil
	}

	env := types.NewEnvelope(types.DataKindSummary, true, "successfully authenticated with the AlphaESS Open API").
		WithMeta("authenticated", true)
	return result(env), nil
}

func (s *Server) handleESSList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindSystemList, "configuration error: "+err.Error())), nil
	}

	systems, err := api.GetESSList(ctx)
	if err != nil {
		return result(failure(types.DataKindSystemList, "error getting system list: "+err.Error())), nil
	}
	if len(systems) == 0 {
		return result(failure(types.DataKindSystemList, "no AlphaESS systems found in your account").
			WithMeta("error_type", "no_systems_found")), nil
	}

	var recommended string
	message := fmt.Sprintf("found %d systems; specify which serial to use", len(systems))
	if len(systems) == 1 {
		recommended = systems[0].SysSN
		message = "auto-selected single system: " + recommended
	}

	env := types.NewEnvelope(types.DataKindSystemList, true, message).
		WithMeta("total_systems", len(systems)).
		WithMeta("auto_selected_serial", recommended).
		WithMeta("selection_strategy", lo.Ternary(recommended != "", "single_system_auto", "multiple_systems_manual")).
		WithData(systems).
		WithStructured(types.SystemList{
			RecommendedSerial: recommended,
			Systems:           systemInfos(systems),
			RequiresSelection: recommended == "",
		})
	return result(env), nil
}

func (s *Server) handleLastPowerData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindSnapshot, "configuration error: "+err.Error())), nil
	}

	serial, systems, err := s.resolveSerial(ctx, api, req.GetString("serial", ""))
	if err != nil {
		return result(availableSystems(failure(types.DataKindSnapshot, err.Error()), systems)), nil
	}

	data, err := api.GetLastPowerData(ctx, serial)
	if err != nil {
		return result(failure(types.DataKindSnapshot, "error retrieving power data: "+err.Error()).
			WithSerial(serial)), nil
	}

	env := types.NewEnvelope(types.DataKindSnapshot, true, "retrieved last power data for "+serial).
		WithSerial(serial).
		WithMeta("snapshot_type", "real_time_power").
		WithMeta("units", powerUnits()).
		WithData(data).
		WithStructured(structureSnapshot(*data))
	return result(env), nil
}

func (s *Server) handleOneDayPower(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("query_date")
	if err != nil {
		return result(failure(types.DataKindTimeseries, err.Error())), nil
	}
	if err := types.ValidateQueryDate(date); err != nil {
		return result(failure(types.DataKindTimeseries, err.Error())), nil
	}

	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindTimeseries, "configuration error: "+err.Error())), nil
	}

	serial, systems, err := s.resolveSerial(ctx, api, req.GetString("serial", ""))
	if err != nil {
		return result(availableSystems(failure(types.DataKindTimeseries, err.Error()), systems)), nil
	}

	records, err := api.GetOneDayPower(ctx, serial, date)
	if err != nil {
		return result(failure(types.DataKindTimeseries, "error retrieving one day power data: "+err.Error()).
			WithSerial(serial).
			WithMeta("query_date", date)), nil
	}

	log.Ctx(ctx).DebugContext(ctx, "retrieved one day power data",
		slog.String("serial", serial),
		slog.String("date", date),
		slog.Int("records", len(records)),
	)

	env := types.NewEnvelope(types.DataKindTimeseries, true,
		fmt.Sprintf("retrieved power data for %s on %s", serial, date)).
		WithSerial(serial).
		WithMeta("query_date", date).
		WithMeta("interval_minutes", sampleIntervalMinutes).
		WithMeta("total_records", len(records)).
		WithMeta("units", map[string]string{"power": "W", "soc": "%", "energy": "kWh"}).
		WithData(records).
		WithStructured(structureTimeSeries(records))
	return result(env), nil
}

func (s *Server) handleOneDateEnergy(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("query_date")
	if err != nil {
		return result(failure(types.DataKindSummary, err.Error())), nil
	}
	if err := types.ValidateQueryDate(date); err != nil {
		return result(failure(types.DataKindSummary, err.Error())), nil
	}

	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindSummary, "configuration error: "+err.Error())), nil
	}

	serial, systems, err := s.resolveSerial(ctx, api, req.GetString("serial", ""))
	if err != nil {
		return result(availableSystems(failure(types.DataKindSummary, err.Error()), systems)), nil
	}

	data, err := api.GetOneDateEnergy(ctx, serial, date)
	if err != nil {
		return result(failure(types.DataKindSummary, "error retrieving energy data: "+err.Error()).
			WithSerial(serial).
			WithMeta("query_date", date)), nil
	}

	env := types.NewEnvelope(types.DataKindSummary, true,
		fmt.Sprintf("retrieved energy data for %s on %s", serial, date)).
		WithSerial(serial).
		WithMeta("query_date", date).
		WithMeta("units", map[string]string{"energy": "kWh"}).
		WithData(data)
	return result(env), nil
}

// systemStatistics pairs a serial with its aggregate statistics in the
// all-systems report.
type systemStatistics struct {
	Serial     string            `json:"serial"`
	Statistics *alphaess.SumData `json:"statistics"`
}

func (s *Server) handleSumData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	api, err := s.api()
	if err != nil {
		return result(failure(types.DataKindSummary, "configuration error: "+err.Error())), nil
	}

	systems, err := api.GetESSList(ctx)
	if err != nil {
		return result(failure(types.DataKindSummary, "error getting system list: "+err.Error())), nil
	}
	if len(systems) == 0 {
		return result(failure(types.DataKindSummary, "no AlphaESS systems found in your account").
			WithMeta("error_type", "no_systems_found")), nil
	}

	stats := make([]systemStatistics, 0, len(systems))
	for _, sys := range systems {
		sum, err := api.GetSumData(ctx, sys.SysSN)
		if err != nil {
			return result(failure(types.DataKindSummary,
				fmt.Sprintf("error retrieving statistics for %s: %s", sys.SysSN, err.Error()))), nil
		}
		stats = append(stats, systemStatistics{Serial: sys.SysSN, Statistics: sum})
	}

	env := types.NewEnvelope(types.DataKindSummary, true,
		fmt.Sprintf("retrieved statistics for %d systems", len(stats))).
		WithMeta("total_systems", len(stats)).
		WithData(stats)
	return result(env), nil
}
