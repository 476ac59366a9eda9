// Package auth models the demo session: a flag plus an optional user
// record. Login is a mock with no credential check; the container exists so
// the account surface and persistence behave like the real thing.
package auth

import "minimalstore/internal/domain"

type Session struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *domain.User `json:"user"`
}

func (s *Session) Login(u domain.User) {
	s.IsAuthenticated = true
	s.User = &u
}

func (s *Session) Logout() {
	s.IsAuthenticated = false
	s.User = nil
}
