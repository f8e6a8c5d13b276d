package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type traceIDKey struct{}

// WithTraceID returns a context carrying the request's trace ID so audit
// events can be joined with access logs
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// AuditLogger writes account-security and money-movement events with a
// stable event_type attribute. Credentials and access tokens never reach it.
type AuditLogger struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
		now:    time.Now,
	}
}

func (al *AuditLogger) log(ctx context.Context, level slog.Level, msg, eventType string, attrs ...slog.Attr) {
	attrs = append(attrs,
		slog.String("event_type", eventType),
		slog.Time("timestamp", al.now().UTC()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
	al.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (al *AuditLogger) LogUserRegistered(ctx context.Context, userID uuid.UUID, username string) {
	al.log(ctx, slog.LevelInfo, "user registered", "user_registered",
		slog.String("user_id", userID.String()),
		slog.String("username", username),
	)
}

func (al *AuditLogger) LogLoginFailed(ctx context.Context, userID uuid.UUID, reason string) {
	al.log(ctx, slog.LevelWarn, "login failed", "login_failed",
		slog.String("user_id", userID.String()),
		slog.String("reason", reason),
	)
}

func (al *AuditLogger) LogUsernameChanged(ctx context.Context, userID uuid.UUID, username string) {
	al.log(ctx, slog.LevelInfo, "username changed", "username_changed",
		slog.String("user_id", userID.String()),
		slog.String("username", username),
	)
}

func (al *AuditLogger) LogPasswordChanged(ctx context.Context, userID uuid.UUID) {
	al.log(ctx, slog.LevelInfo, "password changed", "password_changed",
		slog.String("user_id", userID.String()),
	)
}

func (al *AuditLogger) LogUserDeleted(ctx context.Context, userID uuid.UUID) {
	al.log(ctx, slog.LevelInfo, "user deleted", "user_deleted",
		slog.String("user_id", userID.String()),
	)
}

func (al *AuditLogger) LogItemLinked(ctx context.Context, userID uuid.UUID, itemID string, accountsLinked int) {
	al.log(ctx, slog.LevelInfo, "bank item linked", "item_linked",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID),
		slog.Int("accounts_linked", accountsLinked),
	)
}

func (al *AuditLogger) LogItemUnlinked(ctx context.Context, userID uuid.UUID, itemID string) {
	al.log(ctx, slog.LevelInfo, "bank item unlinked", "item_unlinked",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID),
	)
}

func (al *AuditLogger) LogItemStatusChange(ctx context.Context, itemID, newStatus, webhookCode string) {
	al.log(ctx, slog.LevelWarn, "linked item status updated", "item_status_change",
		slog.String("item_id", itemID),
		slog.String("new_status", newStatus),
		slog.String("webhook_code", webhookCode),
	)
}

func (al *AuditLogger) LogBankAccountLinked(ctx context.Context, userID uuid.UUID, itemID string, accountID uuid.UUID) {
	al.log(ctx, slog.LevelInfo, "bank account linked", "bank_account_linked",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID),
		slog.String("account_id", accountID.String()),
	)
}

func (al *AuditLogger) LogBatchStored(ctx context.Context, userID uuid.UUID, processed, skipped int, totalRoundup string) {
	al.log(ctx, slog.LevelInfo, "batch roundup stored", "roundup_batch_stored",
		slog.String("user_id", userID.String()),
		slog.Int("processed", processed),
		slog.Int("skipped", skipped),
		slog.String("total_roundup", totalRoundup),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service, operation string, oldState, newState string) {
	al.log(ctx, slog.LevelWarn, "circuit breaker state change", "circuit_breaker_state_change",
		slog.String("service", service),
		slog.String("operation", operation),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
	)
}
