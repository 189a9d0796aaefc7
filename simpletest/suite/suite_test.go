package suite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-simpletest/simpletest"
	"github.com/LerianStudio/lib-simpletest/simpletest/log"
	"github.com/LerianStudio/lib-simpletest/simpletest/suite"
)

// The registry is process-wide, so these tests reset it and run sequentially.

func TestRun_InsertionOrder(t *testing.T) {
	suite.Reset()
	t.Cleanup(suite.Reset)

	var order []string

	suite.Register("first", func() { order = append(order, "first") })
	suite.Register("second", func() { order = append(order, "second") })
	suite.Register("third", func() { order = append(order, "third") })

	suite.Run(context.Background())

	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestRun_RunsBlocksOnceEachCall(t *testing.T) {
	suite.Reset()
	t.Cleanup(suite.Reset)

	calls := 0

	suite.Register("counted", func() { calls++ })

	suite.Run(context.Background())
	suite.Run(context.Background())

	require.Equal(t, 2, calls)
}

func TestRun_PanickingBlockDoesNotStopOthers(t *testing.T) {
	suite.Reset()
	t.Cleanup(suite.Reset)

	failedBefore := simpletest.Default().Failed()

	var survivorRan bool

	suite.Register("bomb", func() { panic("boom") })
	suite.Register("survivor", func() { survivorRan = true })

	suite.Run(context.Background())

	assert.True(t, survivorRan)

	// The blown-up block surfaces as a failed check, not just a log line.
	assert.Greater(t, simpletest.Default().Failed(), failedBefore)
}

func TestRegister_NilFuncIgnored(t *testing.T) {
	suite.Reset()
	t.Cleanup(suite.Reset)

	suite.Register("nil", nil)

	// Nothing to run; must not panic.
	suite.Run(context.Background())
}

func TestRun_NilContext(t *testing.T) {
	suite.Reset()
	t.Cleanup(suite.Reset)

	ran := false

	suite.Register("block", func() { ran = true })

	suite.Run(nil) //nolint:staticcheck

	require.True(t, ran)
}

func TestSetLogger_NilIsSafe(t *testing.T) {
	suite.Reset()
	t.Cleanup(func() {
		suite.Reset()
		suite.SetLogger(log.NewNop())
	})

	suite.SetLogger(nil)
	suite.Register("block", func() {})
	suite.Run(context.Background())
}
