package settings_test

import (
	"testing"

	"dinepos/internal/core/domain/model/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestDefaultKOTConfig(t *testing.T) {
	cfg := settings.DefaultKOTConfig()

	assert.False(t, cfg.PrintByDepartment())
	assert.Equal(t, 1, cfg.NumberOfCopies())
}

func TestNewKOTConfig(t *testing.T) {
	cfg, err := settings.NewKOTConfig(true, 3)
	require.NoError(t, err)
	assert.True(t, cfg.PrintByDepartment())
	assert.Equal(t, 3, cfg.NumberOfCopies())

	_, err = settings.NewKOTConfig(false, 0)
	require.Error(t, err)
}

func TestKOTConfig_Patch(t *testing.T) {
	t.Run("nil fields stay unchanged", func(t *testing.T) {
		cfg := settings.DefaultKOTConfig()

		require.NoError(t, cfg.Patch(nil, intPtr(2)))

		assert.False(t, cfg.PrintByDepartment())
		assert.Equal(t, 2, cfg.NumberOfCopies())
	})

	t.Run("rejects non-positive copies", func(t *testing.T) {
		cfg := settings.DefaultKOTConfig()

		err := cfg.Patch(boolPtr(true), intPtr(0))

		require.Error(t, err)
		// Copies unchanged after the failed patch.
		assert.Equal(t, 1, cfg.NumberOfCopies())
	})
}

func TestDefaultBillConfig(t *testing.T) {
	cfg := settings.DefaultBillConfig()

	assert.False(t, cfg.AutoPrintDineIn())
	assert.False(t, cfg.AutoPrintTakeaway())
}

func TestBillConfig_Patch(t *testing.T) {
	cfg := settings.DefaultBillConfig()

	cfg.Patch(boolPtr(true), nil)

	assert.True(t, cfg.AutoPrintDineIn())
	assert.False(t, cfg.AutoPrintTakeaway())
}
