package repokit

import (
	"context"
	"testing"

	"riftcoach/internal/platform/store"
)

// fakeTx runs the callback against its own fakeQ and records the error it returns
type fakeTx struct {
	fakeQ
	calls int
}

func (f *fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	f.calls++
	return fn(&f.fakeQ)
}

func TestWithTxDelegates(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{}
	var seen Queryer
	err := WithTx(context.Background(), tx, func(q Queryer) error {
		seen = q
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if tx.calls != 1 {
		t.Fatalf("expected one Tx call, got %d", tx.calls)
	}
	if seen == nil {
		t.Fatalf("callback did not receive a queryer")
	}
}

func TestWithTxPropagatesError(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{}
	want := errBoom("rollback")
	err := WithTx(context.Background(), tx, func(Queryer) error { return want })
	if err != want {
		t.Fatalf("WithTx error = %v, want %v", err, want)
	}
}
