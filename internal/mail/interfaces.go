// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

type EmailServiceInterface interface {
	Send(ctx context.Context, to string, template TemplateType, data TemplateData) error
}
