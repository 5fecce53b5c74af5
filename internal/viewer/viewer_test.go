package viewer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsHidden(t *testing.T) {
	var s State
	assert.Equal(t, Hidden, s)
	assert.Equal(t, "View Document", s.Label())
}

func TestToggleRoundTrip(t *testing.T) {
	s := Hidden.Toggle()
	assert.Equal(t, Shown, s)
	assert.Equal(t, "Hide Document", s.Label())
	assert.Equal(t, Hidden, s.Toggle())
}

func TestParseState(t *testing.T) {
	for _, s := range []State{Hidden, Shown} {
		got, err := ParseState(s.Param())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseState("")
	require.NoError(t, err)
	assert.Equal(t, Hidden, got)

	_, err = ParseState("maybe")
	require.Error(t, err)
	assert.Contains(t, fmt.Sprintf("%+v", err), "viewer.ParseState", "error carries a stack trace")
}
