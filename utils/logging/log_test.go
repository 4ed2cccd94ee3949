// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLog(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	recovered := new(bool)
	panicFunc := func() {
		panic("DON'T PANIC!")
	}
	exitFunc := func() {
		*recovered = true
	}
	log.RecoverAndExit(panicFunc, exitFunc)

	require.True(t, *recovered)
}

func TestLogLevels(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("test", NewWrappedCore(Trace, buf, JSONEncoder()))

	log.Debug("hidden")
	log.Trace("shown", zap.Int("n", 1))
	require.NotContains(buf.String(), "hidden")
	require.Contains(buf.String(), `"level":"TRACE"`)
	require.Contains(buf.String(), `"n":1`)
	require.Contains(buf.String(), `"logger":"test"`)

	log.SetLevel(Error)
	require.False(log.Enabled(Warn))
	require.True(log.Enabled(Error))

	buf.Reset()
	log.Warn("hidden")
	require.Empty(buf.String())

	log.Fatal("still running")
	require.Contains(buf.String(), `"level":"FATAL"`)
}

func TestLogWith(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSONEncoder()))
	child := log.With(zap.String("contract", "0xabc"))

	child.Info("hello")
	log.Info("world")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(lines, 2)
	require.Contains(lines[0], `"contract":"0xabc"`)
	require.NotContains(lines[1], "contract")
}

func TestColorEncoder(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, Colors.ConsoleEncoder()))
	log.Warn("careful")

	require.Contains(buf.String(), Yellow.Wrap(Warn.AlignedString()))
}

func TestFactory(t *testing.T) {
	require := require.New(t)

	config := DefaultConfig()
	config.Directory = t.TempDir()
	config.LogLevel = Debug
	config.DisableWriterDisplaying = true
	factory := NewFactory(config)
	defer factory.Close()

	log, err := factory.Make("randomness")
	require.NoError(err)

	_, err = factory.Make("randomness")
	require.ErrorContains(err, "already exists")

	_, err = factory.MakeChild("randomness", "monitor")
	require.NoError(err)
	require.Equal([]string{"randomness", "randomness.monitor"}, factory.GetLoggerNames())

	require.NoError(factory.SetLogLevel("randomness", Info))
	require.NoError(factory.SetDisplayLevel("randomness", Off))
	require.Error(factory.SetLogLevel("missing", Info))

	log.Debug("dropped")
	log.Info("kept")
	log.Stop()

	b, err := os.ReadFile(filepath.Join(config.Directory, "randomness.log"))
	require.NoError(err)
	require.Contains(string(b), "kept")
	require.NotContains(string(b), "dropped")
}

func TestFactoryWithoutFile(t *testing.T) {
	require := require.New(t)

	factory := NewFactory(DefaultConfig())
	defer factory.Close()

	_, err := factory.Make("cli")
	require.NoError(err)
	require.ErrorContains(factory.SetLogLevel("cli", Debug), "does not write to a file")
}

func TestHighlight(t *testing.T) {
	require := require.New(t)

	h, err := ToHighlight("colors", 0)
	require.NoError(err)
	require.Equal(Colors, h)

	_, err = ToHighlight("rainbow", 0)
	require.Error(err)

	b, err := Plain.MarshalJSON()
	require.NoError(err)
	require.Equal(`"PLAIN"`, string(b))
}
