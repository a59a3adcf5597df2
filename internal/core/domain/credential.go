package domain

// Credential holds the hashed login secret for a principal. Accounts are
// provisioned with MustChangePassword set; it is cleared only by a successful
// password change.
type Credential struct {
	PrincipalKind      PrincipalKind `json:"principalKind"`
	PrincipalID        string        `json:"principalID"`
	PasswordHash       string        `json:"-"`
	MustChangePassword bool          `json:"mustChangePassword"`
}
