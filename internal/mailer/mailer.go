package mailer

import "context"

// Mailer dispatches the lifecycle's transactional emails. A non-nil error
// from any method aborts the lifecycle operation that triggered the send.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, code string) error
	SendWelcomeEmail(ctx context.Context, to, name string) error
	SendPasswordResetEmail(ctx context.Context, to, resetURL string) error
	SendResetSuccessEmail(ctx context.Context, to string) error
}
