package estimate

import (
	"bytes"
	"errors"
	"testing"

	"luzialabs/luzia/cmd/root"
	"luzialabs/luzia/internal/apperror"
	"luzialabs/luzia/internal/config"
	"luzialabs/luzia/internal/container"
	"luzialabs/luzia/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Storage.DataDir = t.TempDir()
	cfg.Storage.HistoryFile = "luzia_history.csv"
	cfg.Storage.Delimiter = ","
	cfg.Pricing.PricePerKWh = 0.15
	cfg.Pricing.MonthlyBudget = 50
	cfg.Pricing.BaseCurrency = "USD"
	cfg.Pricing.AltCurrency = "ARS"
	cfg.Pricing.ExchangeRate = 1000
	cfg.Display.DefaultCurrency = "USD"

	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	root.SetContainer(c)
	t.Cleanup(func() { root.SetContainer(nil) })

	opts = defaultOptions()
	var out bytes.Buffer
	Cmd.SetOut(&out)
	return &out
}

func TestRun_ListsDevicesByDefault(t *testing.T) {
	out := setup(t)

	require.NoError(t, run(Cmd, nil))

	assert.Contains(t, out.String(), "Air conditioner")
	assert.Contains(t, out.String(), "1.2 kWh/day")
}

func TestRun_Preset(t *testing.T) {
	out := setup(t)
	opts.Device = "led"
	opts.Quantity = "8"
	opts.PerDay = "5"

	require.NoError(t, run(Cmd, nil))

	assert.Contains(t, out.String(), "LED bulb × 8")
	assert.Contains(t, out.String(), "12.00 kWh")
	assert.Contains(t, out.String(), "Lighting")
}

func TestRun_Power(t *testing.T) {
	out := setup(t)
	opts.PowerKW = "2.2"
	opts.PerDay = "1"
	opts.Days = "20"

	require.NoError(t, run(Cmd, nil))

	assert.Contains(t, out.String(), "2.2 kW device")
	assert.Contains(t, out.String(), "44.00 kWh")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		apply func(o *Options)
		field string
	}{
		{"both device and power", func(o *Options) { o.Device = "ac"; o.PowerKW = "1" }, "power-kw"},
		{"unknown device", func(o *Options) { o.Device = "toaster" }, "device"},
		{"zero days", func(o *Options) { o.Device = "ac"; o.Days = "0" }, "days"},
		{"negative hours", func(o *Options) { o.Device = "ac"; o.PerDay = "-2" }, "hours"},
		{"zero power", func(o *Options) { o.PowerKW = "0" }, "power-kw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t)
			tt.apply(&opts)

			err := run(Cmd, nil)

			var vErr *apperror.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}
