package scoring

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordEvaluation(string)    {}
func (n *NoopMetricsCollector) RecordRiskScore(float64)    {}
func (n *NoopMetricsCollector) RecordError(string, string) {}
