package resource_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

func newTestPool(t *testing.T) *resource.Pool {
	pool := resource.NewPool()
	err := pool.Register("wtiv", resource.Spec{
		Name:             "wtiv",
		DayRate:          240000,
		IdleDayRate:      120000,
		TransitSpeed:     12,
		MobilizationDays: 7,
		MobilizationMult: 0.5,
	})
	require.NoError(t, err)
	return pool
}

func TestPool_RegisterRejectsDuplicates(t *testing.T) {
	// Arrange
	pool := newTestPool(t)

	// Act
	err := pool.Register("wtiv", resource.Spec{DayRate: 1})

	// Assert
	var cfgErr *shared.ConfigurationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))
}

func TestPool_UnknownUnit(t *testing.T) {
	// Arrange
	pool := newTestPool(t)

	// Act
	_, err := pool.Unit("ghost-vessel")

	// Assert
	var cfgErr *shared.ConfigurationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))
}

func TestPool_MobilizeIsIdempotent(t *testing.T) {
	// Arrange
	pool := newTestPool(t)

	// Act - first mobilization bills, second is free
	first, err := pool.Mobilize("wtiv")
	require.NoError(t, err)
	second, err := pool.Mobilize("wtiv")
	require.NoError(t, err)

	// Assert
	assert.True(t, first.First)
	assert.Equal(t, 168.0, first.Hours)
	assert.Equal(t, 240000*7*0.5, first.Cost)
	assert.False(t, second.First)
	assert.Zero(t, second.Cost)

	// The unit is occupied through mobilization
	freeAt, err := pool.FreeAt("wtiv")
	require.NoError(t, err)
	assert.Equal(t, 168.0, freeAt)
}

func TestPool_AcquireDefersToFreeTime(t *testing.T) {
	// Arrange
	pool := newTestPool(t)
	first, err := pool.Acquire("wtiv", 0, 10, resource.StateBusy)
	require.NoError(t, err)

	// Act - requested at hour 2, but the unit works until hour 10
	second, err := pool.Acquire("wtiv", 2, 5, resource.StateBusy)

	// Assert - exclusive intervals never overlap
	require.NoError(t, err)
	assert.Equal(t, 0.0, first.Start)
	assert.Equal(t, 10.0, first.End)
	assert.Equal(t, 10.0, second.Start)
	assert.Equal(t, 15.0, second.End)
	assert.Equal(t, 10.0, second.PrevFreeAt)
}

func TestPool_AcquireGroup_CommonStart(t *testing.T) {
	// Arrange - three tugs, one busy until hour 20
	pool := resource.NewPool()
	require.NoError(t, pool.RegisterGroup("tug", 3, resource.Spec{DayRate: 50000}))
	_, err := pool.Acquire("tug-1", 0, 20, resource.StateBusy)
	require.NoError(t, err)

	// Act - any two of the group at hour 0
	reservations, err := pool.AcquireGroup("tug", 2, 0, 8, resource.StateBusy)

	// Assert - the two free tugs start immediately, together
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	for _, r := range reservations {
		assert.Equal(t, 0.0, r.Start)
		assert.Equal(t, 8.0, r.End)
		assert.NotEqual(t, "tug-1", r.UnitID)
	}
}

func TestPool_AcquireGroup_BlocksUntilKFree(t *testing.T) {
	// Arrange - two tugs, both busy until different hours
	pool := resource.NewPool()
	require.NoError(t, pool.RegisterGroup("tug", 2, resource.Spec{DayRate: 50000}))
	_, err := pool.Acquire("tug-1", 0, 5, resource.StateBusy)
	require.NoError(t, err)
	_, err = pool.Acquire("tug-2", 0, 12, resource.StateBusy)
	require.NoError(t, err)

	// Act - both tugs together
	reservations, err := pool.AcquireGroup("tug", 2, 0, 4, resource.StateBusy)

	// Assert - common start gated by the later of the two
	require.NoError(t, err)
	for _, r := range reservations {
		assert.Equal(t, 12.0, r.Start)
	}
}

func TestPool_AcquireGroup_OverCapacity(t *testing.T) {
	// Arrange
	pool := resource.NewPool()
	require.NoError(t, pool.RegisterGroup("tug", 2, resource.Spec{DayRate: 50000}))

	// Act - three of a two-unit group
	_, err := pool.AcquireGroup("tug", 3, 0, 4, resource.StateBusy)

	// Assert
	var contentionErr *shared.ResourceContentionError
	require.Error(t, err)
	require.True(t, errors.As(err, &contentionErr))
	assert.Equal(t, 3, contentionErr.Requested)
	assert.Equal(t, 2, contentionErr.Available)
}

func TestPool_GroupFreeAt(t *testing.T) {
	// Arrange
	pool := resource.NewPool()
	require.NoError(t, pool.RegisterGroup("tug", 3, resource.Spec{DayRate: 50000}))
	_, err := pool.Acquire("tug-1", 0, 6, resource.StateBusy)
	require.NoError(t, err)
	_, err = pool.Acquire("tug-2", 0, 9, resource.StateBusy)
	require.NoError(t, err)

	// Act / Assert - kth-smallest free time
	one, err := pool.GroupFreeAt("tug", 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, one)

	two, err := pool.GroupFreeAt("tug", 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, two)

	three, err := pool.GroupFreeAt("tug", 3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, three)
}

func TestSpec_Derivations(t *testing.T) {
	// Arrange
	spec := resource.Spec{DayRate: 24000, IdleDayRate: 12000, TransitSpeed: 10, MobilizationDays: 3}

	// Assert
	assert.Equal(t, 1000.0, spec.HourlyRate())
	assert.Equal(t, 500.0, spec.IdleHourlyRate())
	assert.Equal(t, 72.0, spec.MobilizationHours())
	assert.Equal(t, 24000*3.0, spec.MobilizationCost())
	assert.Equal(t, 5.0, spec.TransitHours(50))
	assert.Equal(t, 0.0, resource.Spec{}.TransitHours(50))
}
