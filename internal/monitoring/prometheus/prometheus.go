// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencyUp *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, seconds float64) error {
	metric, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Observe(seconds)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, available float64) error {
	metric, err := m.dependencyUp.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Set(available)
	return nil
}

func (m *Monitor) registerMetrics() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "Response time of HTTP requests by route, method and status.",
			ConstLabels: prometheus.Labels{"service": m.service},
			Buckets:     prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	m.dependencyUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "Availability of downstream dependencies, 1 up 0 down.",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"dependency"},
	)

	prometheus.MustRegister(m.responseTime, m.dependencyUp)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}
