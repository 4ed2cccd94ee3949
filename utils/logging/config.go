// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// RotatingWriterConfig controls the lumberjack file writer. Sizes are in
// megabytes and ages in days.
type RotatingWriterConfig struct {
	MaxSize   int    `json:"maxSize"`
	MaxFiles  int    `json:"maxFiles"`
	MaxAge    int    `json:"maxAge"`
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool      `json:"disableWriterDisplaying"`
	LogLevel                Level     `json:"logLevel"`
	DisplayLevel            Level     `json:"displayLevel"`
	LogFormat               Highlight `json:"logFormat"`
	MsgPrefix               string    `json:"-"`
	LoggerName              string    `json:"-"`
}

// DefaultConfig logs INFO to the terminal and nothing to disk.
func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8,
			MaxFiles: 7,
			MaxAge:   30,
		},
		LogLevel:     Off,
		DisplayLevel: Info,
		LogFormat:    Plain,
	}
}
