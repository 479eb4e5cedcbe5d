package alphaess

import "context"

// API is the subset of the AlphaESS Open API the bridge depends on.
// *Client implements it; tests substitute a mock.
type API interface {
	// Authenticate performs a credential check against the vendor.
	Authenticate(ctx context.Context) error

	// GetESSList returns every system registered to the account.
	GetESSList(ctx context.Context) ([]System, error)

	// GetLastPowerData returns the live power snapshot for a system.
	GetLastPowerData(ctx context.Context, serial string) (*LastPowerData, error)

	// GetOneDayPower returns the 10-minute power series for one date.
	GetOneDayPower(ctx context.Context, serial, date string) ([]PowerRecord, error)

	// GetOneDateEnergy returns the energy totals for one date.
	GetOneDateEnergy(ctx context.Context, serial, date string) (*EnergyData, error)

	// GetSumData returns the aggregate statistics for a system.
	GetSumData(ctx context.Context, serial string) (*SumData, error)

	// GetChargeConfig returns the grid-charge schedule.
	GetChargeConfig(ctx context.Context, serial string) (*ChargeConfig, error)

	// GetDischargeConfig returns the discharge schedule.
	GetDischargeConfig(ctx context.Context, serial string) (*DischargeConfig, error)

	// UpdateChargeConfig validates and submits a new grid-charge schedule.
	UpdateChargeConfig(ctx context.Context, serial string, cfg ChargeConfig) error

	// UpdateDischargeConfig validates and submits a new discharge schedule.
	UpdateDischargeConfig(ctx context.Context, serial string, cfg DischargeConfig) error
}
