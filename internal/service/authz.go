package service

import "github.com/GunarsK-portfolio/blog-service/internal/models"

// Actor is the authenticated caller on whose behalf a service method runs.
type Actor struct {
	UserID int64
	Role   models.Role
	Active bool
}

// ActorFromClaims builds an Actor from validated token claims.
func ActorFromClaims(c *Claims) Actor {
	return Actor{UserID: c.UserID, Role: c.Role, Active: c.Active}
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// Owns reports whether the actor is the owner of a resource.
func (a Actor) Owns(ownerID int64) bool {
	return a.UserID == ownerID
}

// CanModify grants access to the owner or an admin.
func (a Actor) CanModify(ownerID int64) bool {
	return a.Owns(ownerID) || a.IsAdmin()
}

// CanModerate grants access to the owner, a moderator or an admin.
func (a Actor) CanModerate(ownerID int64) bool {
	return a.Owns(ownerID) || a.Role.In(models.RoleModerator, models.RoleAdmin)
}
