package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/domain/ledger"
)

func mustAction(t *testing.T, agent, name, phase string, start, duration, cost float64) ledger.Action {
	a, err := ledger.NewAction(agent, name, phase, start, duration, cost)
	require.NoError(t, err)
	return a
}

func TestNewAction_RejectsNegativeValues(t *testing.T) {
	_, err := ledger.NewAction("wtiv", "Drive Pile", "MonopileInstallation", -1, 2, 100)
	assert.Error(t, err)

	_, err = ledger.NewAction("wtiv", "Drive Pile", "MonopileInstallation", 0, -2, 100)
	assert.Error(t, err)

	_, err = ledger.NewAction("wtiv", "Drive Pile", "MonopileInstallation", 0, 2, -100)
	assert.Error(t, err)
}

func TestAction_ZeroDurationIsValid(t *testing.T) {
	// Act - readiness markers carry no time
	a, err := ledger.NewAction("", "Substation Substructure Assembly", "SubstationInstallation", 5, 0, 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5.0, a.End())
}

func TestLedger_ActionsSortedByStart(t *testing.T) {
	// Arrange - appended out of order
	l := ledger.NewLedger()
	l.Append(mustAction(t, "b", "Second", "P", 10, 1, 50))
	l.Append(mustAction(t, "a", "First", "P", 2, 1, 50))
	l.Append(mustAction(t, "c", "Third", "P", 20, 1, 50))

	// Act
	actions := l.Actions()

	// Assert
	require.Len(t, actions, 3)
	assert.Equal(t, "First", actions[0].Name())
	assert.Equal(t, "Second", actions[1].Name())
	assert.Equal(t, "Third", actions[2].Name())
}

func TestLedger_Totals(t *testing.T) {
	// Arrange
	l := ledger.NewLedger()
	l.Append(mustAction(t, "wtiv", "Drive Pile", "MonopileInstallation", 0, 12, 1200))
	l.Append(mustAction(t, "wtiv", "Bolt TP", "MonopileInstallation", 12, 8, 800))
	l.Append(mustAction(t, "clv", "Lay Cable", "ArrayCableInstallation", 4, 30, 3000))

	// Assert
	assert.Equal(t, 5000.0, l.TotalCost())
	assert.Equal(t, 34.0, l.MaxEnd())

	byPhase := l.CostByPhase()
	assert.Equal(t, 2000.0, byPhase["MonopileInstallation"])
	assert.Equal(t, 3000.0, byPhase["ArrayCableInstallation"])

	assert.Len(t, l.ByAgent("wtiv"), 2)
	assert.Len(t, l.ByPhase("ArrayCableInstallation"), 1)
}
