package email

import (
	"fmt"
)

// AuthEmail composes and sends the account lifecycle emails. Links point
// at the frontend, which posts the token back to the API.
type AuthEmail struct {
	sender      Sender
	frontendURL string
}

// NewAuthEmail creates the auth email composer
func NewAuthEmail(sender Sender, frontendURL string) *AuthEmail {
	return &AuthEmail{
		sender:      sender,
		frontendURL: frontendURL,
	}
}

// SendConfirmationEmail sends the account confirmation code
func (e *AuthEmail) SendConfirmationEmail(name, to, token string) error {
	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
  <p>Hi %s, you have created your TaskFlow account, it is almost ready, you just need to confirm it.</p>
  <p>Visit the following link:</p>
  <p><a href="%s/confirm-account">Confirm account</a></p>
  <p>And enter the code: <b>%s</b></p>
  <p>This token expires in 5 minutes.</p>
</body>
</html>`, name, e.frontendURL, token)

	return e.sender.Send(to, "TaskFlow - Confirm your account", body)
}

// SendPasswordResetEmail sends the password reset code
func (e *AuthEmail) SendPasswordResetEmail(name, to, token string) error {
	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
  <p>Hi %s, you have requested to reset your password.</p>
  <p>Visit the following link:</p>
  <p><a href="%s/auth/new-password">Reset password</a></p>
  <p>And enter the code: <b>%s</b></p>
  <p>This token expires in 5 minutes.</p>
</body>
</html>`, name, e.frontendURL, token)

	return e.sender.Send(to, "TaskFlow - Reset your password", body)
}
