package state

import "time"

const (
	// DefaultLocalPref is assigned when neither the advertisement nor the import policy sets one.
	DefaultLocalPref = uint32(100)
	// AsTrans is the 2-byte placeholder for 4-byte AS numbers, RFC 6793.
	AsTrans = AsId(23456)
)

var (
	// DecisionHistoryTTL is how long a decision stays in a router's per-destination history
	DecisionHistoryTTL = time.Minute * 10
	DecisionHistoryLen = 64
	// TraceBufferLen is the number of decisions buffered for trace subscribers
	TraceBufferLen = 1024

	// default debug listener for expvar and /debug/metrics
	DebugListenAddr = "127.0.0.1:6060"
)

// debug flags, set from the command line
var (
	DBG_debug = false // serve expvar and /debug/metrics on DebugListenAddr
	DBG_trace = false // write a runtime trace to trace.out
)
