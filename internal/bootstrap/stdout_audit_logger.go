package bootstrap

import (
	"context"
	"time"

	"github.com/aixxiteru/peta-jabatan/internal/shared/contextutil"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{logger: l.Named("audit"), now: time.Now}
}

// Log fills RequestID and ClientIP from ctx when the entry leaves them empty.
func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	md := contextutil.ExtractMetadata(ctx)
	if entry.RequestID == "" {
		entry.RequestID = md.RequestID
	}
	if entry.ClientIP == "" {
		entry.ClientIP = md.ClientIP
	}

	l.logger.Info("audit event",
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("request_id", entry.RequestID),
		zap.String("client_ip", entry.ClientIP),
		zap.Any("meta", entry.Meta),
	)
}
