package analyze

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"luzialabs/luzia/cmd/root"
	"luzialabs/luzia/internal/apperror"
	"luzialabs/luzia/internal/config"
	"luzialabs/luzia/internal/container"
	"luzialabs/luzia/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*container.Container, *bytes.Buffer) {
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

	opts = Options{}
	var out bytes.Buffer
	Cmd.SetOut(&out)
	return c, &out
}

func TestRun_RecordsEntry(t *testing.T) {
	c, out := setup(t)
	opts = Options{Month: "may", AC: "300", Lighting: "20", Other: "10", Previous: "100", Date: "2024-05-31"}

	require.NoError(t, run(Cmd, nil))

	assert.Contains(t, out.String(), "Consumption report: May")
	assert.Contains(t, out.String(), "Within budget, $0.50 USD left")
	raw, err := os.ReadFile(c.GetStore().Path())
	require.NoError(t, err)
	assert.Equal(t, "2024-05-31,May,300,20,10,49.5\n", string(raw))
}

func TestRun_AlternateCurrency(t *testing.T) {
	_, out := setup(t)
	opts = Options{Currency: "ars", Month: "5", AC: "100", Lighting: "0", Other: "0", Previous: "0"}

	require.NoError(t, run(Cmd, nil))

	assert.Contains(t, out.String(), "$15000.00 ARS")
	assert.Contains(t, out.String(), "Within budget, $35000.00 ARS left")
}

func TestRun_DryRunDoesNotRecord(t *testing.T) {
	c, out := setup(t)
	opts = Options{Month: "June", AC: "1", Lighting: "1", Other: "1", Previous: "0", DryRun: true}

	require.NoError(t, run(Cmd, nil))

	assert.Contains(t, out.String(), "not recorded")
	_, err := os.Stat(c.GetStore().Path())
	assert.True(t, os.IsNotExist(err))
}

func TestRun_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		field string
	}{
		{"negative quantity", Options{Month: "May", AC: "-1"}, "ac"},
		{"not a number", Options{Month: "May", Lighting: "lots"}, "lighting"},
		{"unknown month", Options{Month: "Smarch"}, "month"},
		{"unknown currency", Options{Currency: "EUR", Month: "May"}, "currency"},
		{"bad date", Options{Month: "May", Date: "31/05/2024"}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := setup(t)
			opts = tt.opts

			err := run(Cmd, nil)

			var vErr *apperror.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
			_, statErr := os.Stat(c.GetStore().Path())
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestRun_AppendFailureSurfaces(t *testing.T) {
	c, _ := setup(t)
	blocker := filepath.Join(filepath.Dir(c.GetStore().Path()), "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	cfg := *c.GetConfig()
	cfg.Storage.DataDir = blocker
	broken, err := container.NewContainerWithLogger(&cfg, logging.NewMockLogger())
	require.NoError(t, err)
	root.SetContainer(broken)
	opts = Options{Month: "May", AC: "1", Lighting: "1", Other: "1", Previous: "0"}

	err = run(Cmd, nil)

	var pErr *apperror.PersistenceError
	assert.True(t, errors.As(err, &pErr), "got %v", err)
}

func TestRun_NotInitialized(t *testing.T) {
	root.SetContainer(nil)
	assert.ErrorIs(t, run(Cmd, nil), root.ErrNotInitialized)
}
