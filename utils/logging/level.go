// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

const alignedStringLen = 5

// Level orders verbosity so that it can be compared directly against zap's
// levels. Trace sits between Debug and Info. Fatal maps onto DPanic, which
// only logs in non-development zap loggers, so logging never exits.
type Level int8

const (
	Verbo Level = iota - 3
	Debug
	Trace
	Info
	Warn
	Error
	Fatal = Level(zapcore.DPanicLevel)
	Off   = Fatal + 1
)

const (
	fatalStr   = "FATAL"
	errorStr   = "ERROR"
	warnStr    = "WARN"
	infoStr    = "INFO"
	traceStr   = "TRACE"
	debugStr   = "DEBUG"
	verboStr   = "VERBO"
	offStr     = "OFF"
	unknownStr = "UNKNO"
)

var ErrUnknownLevel = errors.New("unknown log level")

var levelStrings = map[string]Level{
	offStr:   Off,
	fatalStr: Fatal,
	errorStr: Error,
	warnStr:  Warn,
	infoStr:  Info,
	traceStr: Trace,
	debugStr: Debug,
	verboStr: Verbo,
}

// Inverse of Level.String()
func ToLevel(l string) (Level, error) {
	level, ok := levelStrings[strings.ToUpper(l)]
	if !ok {
		return Off, fmt.Errorf("%w: %q", ErrUnknownLevel, l)
	}
	return level, nil
}

func (l Level) Color() Color {
	switch l {
	case Fatal:
		return Red
	case Error:
		return Orange
	case Warn:
		return Yellow
	case Info:
		// Rather than using white, use the default to better support terminals
		// with a white background.
		return Reset
	case Trace:
		return LightPurple
	case Debug:
		return LightBlue
	case Verbo:
		return LightGreen
	default:
		return Reset
	}
}

func (l Level) String() string {
	switch l {
	case Fatal:
		return fatalStr
	case Error:
		return errorStr
	case Warn:
		return warnStr
	case Info:
		return infoStr
	case Trace:
		return traceStr
	case Debug:
		return debugStr
	case Verbo:
		return verboStr
	case Off:
		return offStr
	default:
		return unknownStr
	}
}

// AlignedString pads or truncates the level name to [alignedStringLen] so that
// console output lines up.
func (l Level) AlignedString() string {
	s := l.String()
	if len(s) >= alignedStringLen {
		return s[:alignedStringLen]
	}
	return s + strings.Repeat(" ", alignedStringLen-len(s))
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*l, err = ToLevel(str)
	return err
}
