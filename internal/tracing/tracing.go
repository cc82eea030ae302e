/*
Package tracing is a thin facade over the schuko tracing framework.

Packages of this module trace through the package-level functions below
instead of carrying a tracer around. Tests redirect all trace output into
the testing.T with SetTestingLog.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Tracer returns the tracer used by all packages of this module.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Debugf traces at debug level.
func Debugf(format string, args ...interface{}) {
	gtrace.CoreTracer.Debugf(format, args...)
}

// Infof traces at info level.
func Infof(format string, args ...interface{}) {
	gtrace.CoreTracer.Infof(format, args...)
}

// Errorf traces at error level.
func Errorf(format string, args ...interface{}) {
	gtrace.CoreTracer.Errorf(format, args...)
}

// P attaches a key/value pair to a trace message.
func P(key string, val interface{}) tracing.Trace {
	return gtrace.CoreTracer.P(key, val)
}

// SetTestingLog redirects tracing into the log of t for the duration of
// a test.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	gotestingadapter.RedirectTracing(t)
}
