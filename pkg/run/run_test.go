package run

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type runFunc func(context.Context) error

func (f runFunc) Run(ctx context.Context) error { return f(ctx) }

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Aggregate())
	errs.Add(nil, errors.New("first"), nil, errors.New("second"))
	err := errs.Aggregate()
	require.Error(t, err)
	require.Equal(t, "Multiple errors:\nfirst\nsecond", err.Error())
}

func TestRunnerWait(t *testing.T) {
	boom := errors.New("boom")
	err := NewRunner().Go(
		runFunc(func(context.Context) error { return nil }),
		runFunc(func(context.Context) error { return boom }),
		runFunc(func(context.Context) error { return context.Canceled }),
	).Wait()
	require.Error(t, err)
	aggr := err.(*AggregatedError)
	require.Equal(t, []error{boom}, aggr.Errors)
}

func TestNamedRun(t *testing.T) {
	r := NamedRun("bridge", runFunc(func(context.Context) error { return nil }))
	require.Equal(t, "bridge", r.(Named).Name())
}
