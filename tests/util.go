package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// filterEvents picks the notifications with the given name out of an
// application execution result, contract calls produce interleaved
// notifications from every contract touched.
func filterEvents(aer *state.AppExecResult, name string) []state.NotificationEvent {
	var events []state.NotificationEvent
	for _, ev := range aer.Events {
		if ev.Name == name {
			events = append(events, ev)
		}
	}
	return events
}
