package notify

import (
	"fmt"
	"html"
	"time"
)

const wrapperStyle = `font-family:Arial,sans-serif;max-width:500px;margin:auto;padding:24px;background:#faf7ff;border-radius:12px;border:1px solid #eee;`

func welcomeHTML(name string) string {
	name = html.EscapeString(name)
	return fmt.Sprintf(`<div style=%q>
  <h2 style="color:#7a4eab;">Welcome, %s!</h2>
  <p>Thank you for signing up.<br/>We're excited to have you join our family.</p>
  <p style="margin-top:24px;">Happy Shopping!</p>
  <hr style="margin:24px 0;border:none;border-top:1px solid #eee;">
  <small style="color:#888;">If you did not sign up, please ignore this email.</small>
</div>`, wrapperStyle, name)
}

func loginAlertHTML(name string, at time.Time) string {
	name = html.EscapeString(name)
	return fmt.Sprintf(`<div style=%q>
  <h2 style="color:#7a4eab;">Hello, %s!</h2>
  <p>Your account was just logged in.</p>
  <ul><li><b>Login Date &amp; Time:</b> %s</li></ul>
  <p style="margin-top:24px;">If this wasn't you, please reset your password immediately.</p>
  <hr style="margin:24px 0;border:none;border-top:1px solid #eee;">
  <small style="color:#888;">This is an automated notification.</small>
</div>`, wrapperStyle, name, at.Format("Mon, 02 Jan 2006 15:04 MST"))
}

func passwordResetHTML(name, resetURL string) string {
	name = html.EscapeString(name)
	resetURL = html.EscapeString(resetURL)
	return fmt.Sprintf(`<div style=%q>
  <h2 style="color:#7a4eab;">Hello, %s!</h2>
  <p>We received a request to reset your password. The link below is valid for one hour.</p>
  <p><a href="%s" style="color:#7a4eab;">Reset your password</a></p>
  <hr style="margin:24px 0;border:none;border-top:1px solid #eee;">
  <small style="color:#888;">If you did not request a reset, you can safely ignore this email.</small>
</div>`, wrapperStyle, name, resetURL)
}
