package dashboard_test

import (
	. "greenvolt.xyz/energy-dashboard-service/pkg/dashboard"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "greenvolt.xyz/energy-dashboard-service/pkg/testing"
)

func TestSnapshot_PartitionsByType(t *testing.T) {
	snap := Snapshot(fleetFixture(), -0.8, 9.5, 0.5)

	assert.InDelta(t, 6.5, snap.Solar, 1e-9)
	assert.InDelta(t, 1.7, snap.Wind, 1e-9)
	assert.InDelta(t, 2.1, snap.Battery, 1e-9)
	assert.InDelta(t, -0.8, snap.Grid, 1e-9)
	assert.InDelta(t, 9.5, snap.Consumption, 1e-9)

	// 6.5 + 1.7 + 2.1 - 0.8 = 9.5, balanced
	assert.Nil(t, snap.BalanceWarning)
}

func TestSnapshot_ResidualConsumption(t *testing.T) {
	snap := Snapshot(fleetFixture(), -0.8, -1, 0.5)

	assert.InDelta(t, 9.5, snap.Consumption, 1e-9)
	assert.Nil(t, snap.BalanceWarning)
}

func TestSnapshot_BalanceWarning(t *testing.T) {
	snap := Snapshot(fleetFixture(), -0.8, 12.0, 0.5)

	require.NotNil(t, snap.BalanceWarning)
	assert.InDelta(t, 9.5, snap.BalanceWarning.Supply, 1e-9)
	assert.InDelta(t, 12.0, snap.BalanceWarning.Consumption, 1e-9)
	assert.NotEmpty(t, snap.BalanceWarning.Error())

	// the call itself still succeeds with the reported figure
	assert.InDelta(t, 12.0, snap.Consumption, 1e-9)
}

func TestSnapshot_WithinTolerance(t *testing.T) {
	snap := Snapshot(fleetFixture(), -0.8, 9.8, 0.5)

	assert.Nil(t, snap.BalanceWarning)
}

func TestSnapshot_Empty(t *testing.T) {
	snap := Snapshot(nil, 0, -1, 0.5)

	assert.Equal(t, 0.0, snap.Supply())
	assert.Equal(t, 0.0, snap.Consumption)
	assert.Nil(t, snap.BalanceWarning)
}
