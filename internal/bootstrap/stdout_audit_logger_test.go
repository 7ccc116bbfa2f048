package bootstrap

import (
	"context"
	"testing"
	"time"

	"go-attendance/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "req-9")
	ctx = contextutil.WithUserID(ctx, "admin-1")

	l.Log(ctx, AuditLog{Action: "EMPLOYEE_DELETED", Target: "user-7", Message: "Employee deleted"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "2024-05-01T12:00:00Z", fields["timestamp"])
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, "admin-1", fields["actor_id"])
	assert.Equal(t, "EMPLOYEE_DELETED", fields["action"])
	assert.Equal(t, "user-7", fields["target"])
}
