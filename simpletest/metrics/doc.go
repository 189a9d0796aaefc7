// Package metrics provides a thread-safe factory for OpenTelemetry
// instruments with lazy creation and a fluent builder API.
//
// The factory caches instruments by name, so repeated lookups on hot paths
// (every failed check, every tracked construction) do not re-register
// instruments with the meter:
//
//	factory, err := metrics.NewMetricsFactory(meter, logger)
//	if err != nil {
//	    return err
//	}
//
//	counter, err := factory.Counter(metrics.Metric{Name: "check_failed_total", Unit: "1"})
//	if err != nil {
//	    return err
//	}
//
//	_ = counter.WithLabels(map[string]string{"result": "fail"}).AddOne(ctx)
//
// Use NewNopFactory when no meter is configured; every recording becomes a
// no-op without nil checks at call sites.
package metrics
