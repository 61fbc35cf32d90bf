package models

// SessionResponse is the payload returned by login, register and
// check-token: the authenticated user (credential fields stripped)
// together with a signed session token for subsequent requests.
type SessionResponse struct {
	// User is the public view of the authenticated account.
	// The password hash is never serialized; see [User.Public].
	User User `json:"user"`

	// Token is the compact JWS string the client presents in the
	// Authorization header on protected routes.
	Token string `json:"token"`
}
