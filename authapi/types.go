package authapi

// Routes exposed by the identity service. Paths keep their trailing slash,
// matching the backend's URL configuration.
const (
	RouteLogin   = "/api/auth/login/"
	RouteVerify  = "/api/auth/verify/"
	RouteRefresh = "/api/auth/refresh/"
)

// LoginRequest is the credential payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

// LoginResponse is the success payload from the login endpoint.
type LoginResponse struct {
	// Access is the short-lived bearer token used on authenticated calls.
	Access string `json:"access"`

	// Refresh is the long-lived token exchanged for new access tokens.
	Refresh string `json:"refresh"`

	// User carries the identity fields the service knows about; company is
	// client-side state and is not echoed back.
	User LoginUser `json:"user"`
}

// LoginUser is the user block inside a login response.
type LoginUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// errorResponse is the rejection payload shape used by the identity service.
type errorResponse struct {
	Detail string `json:"detail"`
}
