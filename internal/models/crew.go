package models

import "github.com/google/uuid"

// RoleCategory groups crew roles by department.
type RoleCategory string

const (
	RoleCategoryDirection  RoleCategory = "direction"
	RoleCategoryTechnical  RoleCategory = "technical"
	RoleCategoryProduction RoleCategory = "production"
	RoleCategoryImage      RoleCategory = "image"
	RoleCategorySound      RoleCategory = "sound"
	RoleCategoryHMC        RoleCategory = "hmc" // hair, makeup, costume
	RoleCategoryDecor      RoleCategory = "decor"
	RoleCategoryActor      RoleCategory = "actor"
)

// AlwaysCalledCategories are the departments called on every shoot day,
// regardless of what is on the schedule.
func AlwaysCalledCategories() []RoleCategory {
	return []RoleCategory{
		RoleCategoryDirection,
		RoleCategoryTechnical,
		RoleCategoryProduction,
		RoleCategoryImage,
		RoleCategorySound,
		RoleCategoryHMC,
		RoleCategoryDecor,
	}
}

// Role is one crew position on a project. AssignedUserID is uuid.Nil while the
// position is unfilled.
type Role struct {
	ID             uuid.UUID
	ProjectID      uuid.UUID
	Category       RoleCategory
	Title          string
	AssignedUserID uuid.UUID
}

// Assigned reports whether a person holds the role.
func (r *Role) Assigned() bool {
	return r.AssignedUserID != uuid.Nil
}

// CharacterAssignment links a script character to the actor cast for it.
type CharacterAssignment struct {
	Character   string
	ActorUserID uuid.UUID
}

// CrewCall is one (shoot day, role) notification. A nil CallTime means the
// day's own call time applies.
type CrewCall struct {
	RoleID   uuid.UUID
	CallTime *string
}
