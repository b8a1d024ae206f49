package keeper

import (
	"context"
	"testing"
)

// TestAccessor_processActivations exposes this keeper's processActivations function for unit tests.
func (k *Keeper) TestAccessor_processActivations(t *testing.T, ctx context.Context) error {
	t.Helper()
	return k.processActivations(ctx)
}
