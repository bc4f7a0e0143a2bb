package bootstrap

import "context"

// AuditLog is one operator-visible event: configuration changes and
// process lifecycle.
type AuditLog struct {
	Action    string
	Message   string
	RequestID string
	ClientIP  string
	Meta      map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
