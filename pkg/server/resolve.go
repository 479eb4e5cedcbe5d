package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/alphabridge/alphabridge/pkg/alphaess"
	"github.com/alphabridge/alphabridge/pkg/types"
)

// resolveSerial returns the serial to operate on. When explicit is empty it
// queries the registered systems and auto-selects only when exactly one
// exists; zero or multiple systems are an error the caller must resolve by
// passing a serial. The fetched system list is returned alongside so tools
// can surface it in envelope metadata.
func (s *Server) resolveSerial(ctx context.Context, api alphaess.API, explicit string) (string, []alphaess.System, error) {
	if explicit != "" {
		return explicit, nil, nil
	}

	systems, err := api.GetESSList(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("serial auto-discovery failed: %w", err)
	}

	switch len(systems) {
	case 0:
		return "", systems, errors.New("no AlphaESS systems found in your account")
	case 1:
		return systems[0].SysSN, systems, nil
	default:
		return "", systems, fmt.Errorf("found %d systems; specify which serial to use", len(systems))
	}
}

// systemInfos maps vendor system records to the structured list view.
func systemInfos(systems []alphaess.System) []types.SystemInfo {
	return lo.Map(systems, func(sys alphaess.System, _ int) types.SystemInfo {
		return types.SystemInfo{
			Serial: sys.SysSN,
			Name:   lo.CoalesceOrEmpty(sys.SysName, "Unknown"),
			Status: lo.CoalesceOrEmpty(sys.EMSStatus, "Unknown"),
		}
	})
}

// availableSystems annotates a failure envelope with the systems that were
// found, so the caller can pick one.
func availableSystems(env types.Envelope, systems []alphaess.System) types.Envelope {
	if len(systems) > 0 {
		env = env.WithMeta("available_systems", systemInfos(systems))
	}
	return env
}
