package serrors_test

import (
	"contacts/pkg/serrors"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidArgument,
		serrors.ErrInvalidState,
		serrors.ErrUnsupported,
		serrors.ErrNotFound,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrInvalidArgument, serrors.ErrInvalidState,
		"InvalidArgument should not equal InvalidState")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("strconv failure")

	e1 := serrors.With(serrors.ErrInvalidArgument, "area code [%q] must be a %d-digit number", "12", 3)
	require.Equal(t, `area code ["12"] must be a 3-digit number`, e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrInvalidArgument, base, "parsing street number")
	require.Equal(t, "parsing street number: strconv failure", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrUnsupported)
	require.Equal(t, "UNSUPPORTED", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInvalidArgument, base, "parsing")

	require.ErrorIs(t, e, serrors.ErrInvalidArgument)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInvalidState, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "resolving")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrInvalidState, base, "validating address")
	require.Equal(t, serrors.ErrInvalidState, e.Kind())
	require.Equal(t, "validating address", e.Message())
	require.Equal(t, base, e.Cause())
}
