package service

import "github.com/Baaaki/sportclub/internal/models"

// Caller is the authenticated identity behind a request. The routing layer
// builds it from the verified token and passes it into every operation; no
// service reads ambient state to find out who is acting.
type Caller struct {
	ID   uint
	Role models.Role
}

func (c Caller) IsAdmin() bool  { return c.Role == models.RoleAdmin }
func (c Caller) IsCoach() bool  { return c.Role == models.RoleCoach }
func (c Caller) IsPlayer() bool { return c.Role == models.RolePlayer }
