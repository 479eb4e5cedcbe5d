package server

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/alphabridge/alphabridge/pkg/alphaess"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Authenticate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockAPI) GetESSList(ctx context.Context) ([]alphaess.System, error) {
	args := m.Called(ctx)
	if systems, ok := args.Get(0).([]alphaess.System); ok {
		return systems, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) GetLastPowerData(ctx context.Context, serial string) (*alphaess.LastPowerData, error) {
	args := m.Called(ctx, serial)
	if data, ok := args.Get(0).(*alphaess.LastPowerData); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) GetOneDayPower(ctx context.Context, serial, date string) ([]alphaess.PowerRecord, error) {
	args := m.Called(ctx, serial, date)
	if records, ok := args.Get(0).([]alphaess.PowerRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) GetOneDateEnergy(ctx context.Context, serial, date string) (*alphaess.EnergyData, error) {
	args := m.Called(ctx, serial, date)
	if data, ok := args.Get(0).(*alphaess.EnergyData); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) GetSumData(ctx context.Context, serial string) (*alphaess.SumData, error) {
	args := m.Called(ctx, serial)
	if data, ok := args.Get(0).(*alphaess.SumData); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) GetChargeConfig(ctx context.Context, serial string) (*alphaess.ChargeConfig, error) {
	args := m.Called(ctx, serial)
	if cfg, ok := args.Get(0).(*alphaess.ChargeConfig); ok {
		return cfg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) GetDischargeConfig(ctx context.Context, serial string) (*alphaess.DischargeConfig, error) {
	args := m.Called(ctx, serial)
	if cfg, ok := args.Get(0).(*alphaess.DischargeConfig); ok {
		return cfg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) UpdateChargeConfig(ctx context.Context, serial string, cfg alphaess.ChargeConfig) error {
	args := m.Called(ctx, serial, cfg)
	return args.Error(0)
}

func (m *mockAPI) UpdateDischargeConfig(ctx context.Context, serial string, cfg alphaess.DischargeConfig) error {
	args := m.Called(ctx, serial, cfg)
	return args.Error(0)
}
