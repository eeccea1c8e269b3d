/*
Package tracing bundles tracing helpers shared by the packages of this module.

All packages trace to the schuko core tracer. Tests may redirect the core
tracer to the testing log by calling SetTestingLog at the start of a test.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.
*/
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// P returns the core-tracer, prepared to output a key-value pair.
func P(key string, val interface{}) tracing.Trace {
	return gtrace.CoreTracer.P(key, val)
}

// SetTestingLog redirects the core-tracer to the log of t and sets the trace
// level to debug. Clients should defer the returned teardown function.
//
//   teardown := tracing.SetTestingLog(t)
//   defer teardown()
//
func SetTestingLog(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}
