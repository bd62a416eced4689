package model

// Principal is the authenticated user's identity record held in
// session: login identifier, display name and role.
type Principal struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// Profile is the backend's view of the user's own account, shown and
// edited on the account page.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}
