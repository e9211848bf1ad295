package domain

// User represents a registered account. Persistence belongs to the
// repositories, not to the entity itself.
type User struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	Active       bool
}

// Profile holds the public-facing details attached to a user. Each user owns
// at most one profile.
type Profile struct {
	ID        int64
	Biography string
	Github    string
	Linkedin  string
	UserID    int64
}

// UserView is the serialized user returned at login. The password hash is
// never part of any serialization.
type UserView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Active   bool   `json:"active"`
}

// View returns the login-time serialization of the user.
func (u *User) View() UserView {
	return UserView{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Active:   u.Active,
	}
}

// FullProfile combines user display fields with profile fields. It omits both
// ids and the password hash.
type FullProfile struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Active    bool   `json:"active"`
	Biography string `json:"biography"`
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
}

// FullInfo builds the combined profile view for a user and their profile.
func FullInfo(u *User, p *Profile) FullProfile {
	return FullProfile{
		Name:      u.Name,
		Username:  u.Username,
		Active:    u.Active,
		Biography: p.Biography,
		Github:    p.Github,
		Linkedin:  p.Linkedin,
	}
}
