package models

// Credentials is the request body of POST /api/register and POST /api/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by a successful POST /api/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// VaultPayload is the body of GET and POST /api/accounts.
// A nil EncryptedVault is serialized as JSON null and means that the user
// has never saved a vault.
type VaultPayload struct {
	EncryptedVault *string `json:"encrypted_vault"`
}

// MessageResponse carries a human-readable outcome, both for successful
// writes and for errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
