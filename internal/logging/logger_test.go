// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurityChannel(t *testing.T) {
	logger := NewNoopLogger()
	logger.Security().SystemStartup()
	logger.Security().AuthnFailure("someone@unibo.it", "bad token")
	logger.Security().ProviderContractViolation("generate_link", "no token in link")
}
