package types

// ------------------------------
// Response payloads
// ------------------------------

// CreateAccountResponse is the backend's reply to account creation. On
// success ID is set; on failure the server reports through either Message
// or Error depending on the handler.
type CreateAccountResponse struct {
	ID      string `json:"id"`
	AltID   string `json:"_id"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// AccountID returns the canonical identifier of the created account.
func (r CreateAccountResponse) AccountID() string {
	return CanonicalID(r.ID, r.AltID)
}

// FailureMessage returns the server-reported failure text, empty on success.
func (r CreateAccountResponse) FailureMessage() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}

// LoginResponse is the backend's reply to the login endpoint.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProfileResponse acknowledges a profile upsert.
type ProfileResponse struct {
	Status string `json:"status"`
}
