// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/una-social/onboarding-service/cmd"
)

func main() {
	cmd.Execute()
}
