package entity

// Session binds a gateway-issued session ID to the upstream bearer token and
// the profile returned at login. It lives in Redis for the session TTL and is
// deleted on logout.
type Session struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	User  User   `json:"user"`
}
