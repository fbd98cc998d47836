package perf

import (
	"expvar"
	"net/http"

	"github.com/encodeous/metric"
)

var (
	ReceiveLatency     = metric.NewHistogram("1m1s")
	InstalledPerSecond = metric.NewCounter("10s1s")
	UpdatedPerSecond   = metric.NewCounter("10s1s")
	RejectedPerSecond  = metric.NewCounter("10s1s")
	InvalidPerSecond   = metric.NewCounter("10s1s")

	TraceDroppedPerSecond = metric.NewCounter("10s1s")
)

func init() {
	http.Handle("/debug/metrics", metric.Handler(metric.Exposed))
	expvar.Publish("bestpath:Installed/s", InstalledPerSecond)
	expvar.Publish("bestpath:Updated/s", UpdatedPerSecond)
	expvar.Publish("bestpath:Rejected/s", RejectedPerSecond)
	expvar.Publish("bestpath:Invalid/s", InvalidPerSecond)
	expvar.Publish("bestpath:TraceDropped/s", TraceDroppedPerSecond)
	expvar.Publish("bestpath:ReceiveLatency (µs)", ReceiveLatency)
}
