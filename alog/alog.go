// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package alog is the logging facade used while decoding an AFP stream: a
// thin, toggleable wrapper so a caller who does not want decode-time
// diagnostics pays nothing for them.
package alog

import (
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// LogProvider is the logging surface alog drives. Critical and Error are for
// fatal conditions; Warn corresponds to conditions recorded as record
// exceptions in lenient mode; Debug traces the syntax interpreter's
// parameter-by-parameter progress.
type LogProvider interface {
	Critical(format string, v ...interface{})
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Alog is the logging handle passed down into the decoder. Logging is
// disabled by default; callers that want it call LogMode(true).
type Alog struct {
	provider LogProvider
	// has is 1 when logging is enabled, 0 when disabled.
	has uint32
}

// New builds an Alog backed by charmbracelet/log, writing to stderr at the
// given level (e.g. charmlog.DebugLevel).
func New(level charmlog.Level) Alog {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
		Level:           level,
	})
	return Alog{provider: charmProvider{logger}}
}

// LogMode enables or disables log output.
func (a *Alog) LogMode(enable bool) {
	if enable {
		atomic.StoreUint32(&a.has, 1)
	} else {
		atomic.StoreUint32(&a.has, 0)
	}
}

// SetLogProvider overrides the underlying provider, e.g. in tests that want
// to assert on emitted messages.
func (a *Alog) SetLogProvider(p LogProvider) {
	if p != nil {
		a.provider = p
	}
}

// Critical logs a condition that aborted decoding of the current stream.
func (a Alog) Critical(format string, v ...interface{}) {
	if atomic.LoadUint32(&a.has) == 1 {
		a.provider.Critical(format, v...)
	}
}

// Error logs a fatal parse error about to be returned to the caller.
func (a Alog) Error(format string, v ...interface{}) {
	if atomic.LoadUint32(&a.has) == 1 {
		a.provider.Error(format, v...)
	}
}

// Warn logs a non-fatal condition recorded as a record exception.
func (a Alog) Warn(format string, v ...interface{}) {
	if atomic.LoadUint32(&a.has) == 1 {
		a.provider.Warn(format, v...)
	}
}

// Debug traces syntax-interpreter progress: one line per decoded parameter.
func (a Alog) Debug(format string, v ...interface{}) {
	if atomic.LoadUint32(&a.has) == 1 {
		a.provider.Debug(format, v...)
	}
}

type charmProvider struct {
	logger *charmlog.Logger
}

var _ LogProvider = charmProvider{}

func (p charmProvider) Critical(format string, v ...interface{}) {
	p.logger.Errorf("[critical] "+format, v...)
}

func (p charmProvider) Error(format string, v ...interface{}) {
	p.logger.Errorf(format, v...)
}

func (p charmProvider) Warn(format string, v ...interface{}) {
	p.logger.Warnf(format, v...)
}

func (p charmProvider) Debug(format string, v ...interface{}) {
	p.logger.Debugf(format, v...)
}
