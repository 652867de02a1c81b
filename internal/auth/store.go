package auth

import "sync"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Role   Role   `json:"role"`
}

// CanManageBookings reports whether the user may approve, cancel or complete
// bookings and see the full collection. Callers branch on this capability
// instead of checking the role directly.
func (u *User) CanManageBookings() bool {
	return u != nil && u.Role == RoleAdmin
}

// Store holds the current session identity: at most one user and their token.
type Store struct {
	mu    sync.Mutex
	user  *User
	token string
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SetSession(user *User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// Current returns the signed-in user, or nil when unauthenticated.
func (s *Store) Current() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}
