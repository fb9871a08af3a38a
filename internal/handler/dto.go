package handler

// RegisterRequest is the body of POST /auths/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticationRequest is the body of POST /auths/authenticate.
type AuthenticationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of PATCH /auths/change-password.
type ChangePasswordRequest struct {
	CurrentPassword      string `json:"currentPassword"`
	NewPassword          string `json:"newPassword"`
	ConfirmationPassword string `json:"confirmationPassword"`
}

// AuthenticationResponse carries an issued bearer token.
type AuthenticationResponse struct {
	Token string `json:"token"`
}

// ChangePasswordResponse carries the password-change acknowledgment.
type ChangePasswordResponse struct {
	Message string `json:"message"`
}
