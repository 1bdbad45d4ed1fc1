package usecase

import "github.com/xavierca1/telecrm/internal/entity"

// CanAccess is the single ownership predicate guarding every read and
// write on leads and call records: admins pass unconditionally,
// telecallers only for resources they own. Existence checks always run
// before this one, so a missing resource is reported as not found, not
// as forbidden.
func CanAccess(actor entity.Actor, ownerID string) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.ID == ownerID
}
