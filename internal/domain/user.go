package domain

// User is the account record owned by the user store.
// PasswordHash is set once at creation; there is no password-change flow.
// CurrentToken is the single-session marker: login overwrites it, logout
// clears it, nothing else touches it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CurrentToken string
}

// UserUpdate is the explicit partial-update DTO for profile changes.
// A nil field is left untouched by the store.
type UserUpdate struct {
	Name  *string
	Email *string
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil
}
