package mailer

import "html/template"

const verificationEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Verify your email</h2>
  <p>Hello,</p>
  <p>Thanks for signing up! Your verification code is:</p>
  <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px; text-align: center;">{{.Code}}</p>
  <p>Enter this code on the verification page to complete your registration.</p>
  <p>The code expires in 24 hours.</p>
  <p>If you didn't create an account with us, you can ignore this email.</p>
</body>
</html>`

const welcomeEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome, {{.Name}}!</h2>
  <p>Your email has been verified and your account is ready to use.</p>
  <p>We're glad to have you on board.</p>
</body>
</html>`

const passwordResetEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Reset your password</h2>
  <p>Hello,</p>
  <p>We received a request to reset your password. Click the button below to choose a new one:</p>
  <p style="text-align: center;">
    <a href="{{.ResetURL}}" style="background: #4CAF50; color: #fff; padding: 12px 24px; text-decoration: none; border-radius: 4px;">Reset Password</a>
  </p>
  <p>The link expires in 1 hour.</p>
  <p>If you didn't request a password reset, you can ignore this email.</p>
</body>
</html>`

const resetSuccessEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password changed</h2>
  <p>Hello,</p>
  <p>Your password has been reset successfully.</p>
  <p>If you did not perform this change, contact support immediately.</p>
</body>
</html>`

var (
	verificationTmpl  = template.Must(template.New("verification").Parse(verificationEmailTemplate))
	welcomeTmpl       = template.Must(template.New("welcome").Parse(welcomeEmailTemplate))
	passwordResetTmpl = template.Must(template.New("passwordReset").Parse(passwordResetEmailTemplate))
	resetSuccessTmpl  = template.Must(template.New("resetSuccess").Parse(resetSuccessEmailTemplate))
)
