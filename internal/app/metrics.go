package app

import "time"

type noopMetrics struct{}

func (noopMetrics) ObserveLoad(string, int, time.Duration) {}

func (noopMetrics) ObserveFilter(int, time.Duration) {}
