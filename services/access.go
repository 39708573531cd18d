package services

import (
	"hotel-booking/models"
)

// Session is the authenticated part of a request, as decoded from its token.
type Session struct {
	UserID uint
	Role   string
}

// RequireRole is an exact role match. There is no hierarchy: an admin does
// not satisfy a "user" check.
func RequireRole(identity *models.User, role string) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if identity.Role == "" || identity.Role != role {
		return ErrForbidden
	}
	return nil
}

func RequireAuthenticated(session *Session) (uint, error) {
	if session == nil || session.UserID == 0 {
		return 0, ErrUnauthenticated
	}
	return session.UserID, nil
}
