// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignedString(t *testing.T) {
	levels := []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo}
	for _, l := range levels {
		as := l.AlignedString()
		require.Len(t, as, alignedStringLen)
		s := l.String()
		if len(s) >= alignedStringLen {
			require.Equal(t, s[:alignedStringLen], as)
			continue
		}
		require.Equal(t, s, as[:len(s)])
		require.Equal(t, strings.Repeat(" ", alignedStringLen-len(s)), as[len(s):])
	}
}

func TestToLevel(t *testing.T) {
	tests := map[string]struct {
		input       string
		expected    Level
		expectedErr bool
	}{
		"lower":   {input: "info", expected: Info},
		"upper":   {input: "VERBO", expected: Verbo},
		"mixed":   {input: "TrAcE", expected: Trace},
		"off":     {input: "off", expected: Off},
		"unknown": {input: "chatty", expected: Off, expectedErr: true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			level, err := ToLevel(test.input)
			if test.expectedErr {
				require.ErrorIs(err, ErrUnknownLevel)
			} else {
				require.NoError(err)
			}
			require.Equal(test.expected, level)
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	require := require.New(t)

	ordered := []Level{Verbo, Debug, Trace, Info, Warn, Error, Fatal, Off}
	for i := 1; i < len(ordered); i++ {
		require.Less(ordered[i-1], ordered[i])
	}
}

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Debug)
	require.NoError(err)
	require.Equal(`"DEBUG"`, string(b))

	var l Level
	require.NoError(json.Unmarshal([]byte(`"warn"`), &l))
	require.Equal(Warn, l)
}
