package api

// SignupRequest is the JSON body for POST /signup.
type SignupRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileResponse is returned from GET /check-auth. It carries only the
// non-secret profile fields; the password hash is never serialized.
type ProfileResponse struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// MessageResponse is the common success/error envelope. Every non-profile
// response is a single human-readable message, as in the original service.
type MessageResponse struct {
	Message string `json:"message"`
}
