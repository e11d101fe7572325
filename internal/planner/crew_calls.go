package planner

import (
	"film-server/planner/internal/models"

	"github.com/google/uuid"
)

// DeriveCrewCalls computes who must be called for each finalized day: every
// assigned role in the always-called departments, plus the actor roles of the
// characters appearing in the day's scenes. The result is parallel to days.
// Role ids are de-duplicated per day; no call carries a time override, so the
// day's own call time applies.
func DeriveCrewCalls(
	days []models.ProposedDay,
	roles []models.Role,
	assignments []models.CharacterAssignment,
) [][]models.CrewCall {
	alwaysCalled := make(map[models.RoleCategory]struct{})
	for _, cat := range models.AlwaysCalledCategories() {
		alwaysCalled[cat] = struct{}{}
	}

	var standing []models.Role
	actorRoleByUser := make(map[uuid.UUID]models.Role)
	for _, role := range roles {
		if !role.Assigned() {
			continue
		}
		if _, ok := alwaysCalled[role.Category]; ok {
			standing = append(standing, role)
		}
		if role.Category == models.RoleCategoryActor {
			actorRoleByUser[role.AssignedUserID] = role
		}
	}

	actorByCharacter := make(map[string]uuid.UUID)
	for _, a := range assignments {
		actorByCharacter[a.Character] = a.ActorUserID
	}

	calls := make([][]models.CrewCall, len(days))
	for i := range days {
		seen := make(map[uuid.UUID]struct{})
		var dayCalls []models.CrewCall

		add := func(roleID uuid.UUID) {
			if _, ok := seen[roleID]; ok {
				return
			}
			seen[roleID] = struct{}{}
			dayCalls = append(dayCalls, models.CrewCall{RoleID: roleID})
		}

		for _, role := range standing {
			add(role.ID)
		}

		for _, character := range days[i].Characters() {
			actorID, ok := actorByCharacter[character]
			if !ok {
				continue
			}
			role, ok := actorRoleByUser[actorID]
			if !ok {
				continue
			}
			add(role.ID)
		}

		calls[i] = dayCalls
	}

	return calls
}
