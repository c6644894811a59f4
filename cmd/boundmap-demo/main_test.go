package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/g-m-twostay/go-boundmap/Maps"
)

func TestRun(t *testing.T) {
	for _, args := range [][]string{nil, {"--pow2"}, {"--seed", "7", "-c", "4"}} {
		o, err := parseFlags(args)
		require.NoError(t, err)
		var out bytes.Buffer
		require.NoError(t, run(o, &out, zap.NewNop()))
		want := "v4\n<absent>\n3\n"
		if o.capacity == 4 {
			want += "0.75\n"
		} else {
			want += "0.15\n"
		}
		require.Equal(t, want, out.String(), "args %v", args)
	}
}

func TestRun_InvalidCapacity(t *testing.T) {
	o, err := parseFlags([]string{"--capacity=0"})
	require.NoError(t, err)
	err = run(o, &bytes.Buffer{}, zap.NewNop())
	require.ErrorIs(t, err, Maps.ErrInvalidArgument)
}

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-c", "64", "--pow2", "--seed=3", "-v"})
	require.NoError(t, err)
	require.Equal(t, options{capacity: 64, pow2: true, seed: 3, verbose: true}, o)

	_, err = parseFlags([]string{"--nope"})
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(true)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zap.DebugLevel))
	log, err = newLogger(false)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.DebugLevel))
}
