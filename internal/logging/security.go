// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit events on a dedicated channel so they can be
// routed independently from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name string, fields ...zap.Field) {
	s.l.Info(name, append([]zap.Field{zap.String("audit", "security")}, fields...)...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("system_shutdown")
}

func (s *SecurityLogger) AuthnSuccess(subject string) {
	s.event("authn_success", zap.String("subject", subject))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.event("authn_failure", zap.String("subject", subject), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.event("authz_failure", zap.String("subject", subject), zap.String("action", action))
}

func (s *SecurityLogger) UserCreated(userUUID string) {
	s.event("user_created", zap.String("user_uuid", userUUID))
}
