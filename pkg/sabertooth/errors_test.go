package sabertooth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePortError struct {
	code int
}

func (e *fakePortError) Error() string { return "port gone" }

func TestWrapTransport(t *testing.T) {
	require.NoError(t, wrapTransport(nil))

	inner := &fakePortError{code: 3}
	err := wrapTransport(inner)
	require.True(t, IsKind(err, KindTransport))
	require.Equal(t, "port gone", err.Error())

	// The transport's own error stays reachable for sub-kind matching.
	var pe *fakePortError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 3, pe.code)

	// Driver errors pass through unchanged instead of being re-wrapped.
	already := invalidInputf("bad value")
	require.Same(t, already, wrapTransport(already).(*Error))
}

func TestInvalidInput(t *testing.T) {
	err := invalidInputf("value (%d) out of range", 300)
	require.True(t, IsKind(err, KindInvalidInput))
	require.False(t, IsKind(err, KindTransport))
	require.Equal(t, "value (300) out of range", err.Error())
	require.NoError(t, err.Unwrap())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "transport", KindTransport.String())
	require.Equal(t, "invalid_input", KindInvalidInput.String())
	require.Equal(t, "response", KindResponse.String())
	require.Equal(t, "unknown", KindUnknown.String())
}
