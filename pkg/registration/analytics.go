// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"

	"github.com/lumibase/member-service/internal/logging"
)

var _ AnalyticsInterface = (*EventLogger)(nil)
var _ AnalyticsInterface = (*NoopAnalytics)(nil)

// EventLogger emits analytics events into the structured log stream. It
// stands in for an external analytics sink.
type EventLogger struct {
	logger logging.LoggerInterface
}

func NewEventLogger(logger logging.LoggerInterface) *EventLogger {
	return &EventLogger{logger: logger}
}

func (e *EventLogger) Identify(ctx context.Context, userUUID string, traits map[string]string) {
	e.logger.Infof("analytics identify: user=%s traits=%v", userUUID, traits)
}

type NoopAnalytics struct{}

func NewNoopAnalytics() *NoopAnalytics {
	return &NoopAnalytics{}
}

func (n *NoopAnalytics) Identify(ctx context.Context, userUUID string, traits map[string]string) {
}
