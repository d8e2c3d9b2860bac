package entity

const (
	SessionAuthenticated   = "authenticated"
	SessionUnauthenticated = "unauthenticated"
)

type AuthUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"` // admin, sales
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Session é o registro persistido da sessão mockada.
type Session struct {
	Status string    `json:"status"`
	User   *AuthUser `json:"user"`
	Token  string    `json:"token"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Status == SessionAuthenticated && s.Token != ""
}
