package services

import "github.com/fittrack/fittrack-api/internal/models"

// CanAccess is the single ownership predicate for every owner-scoped record.
// A record with an empty owner id is system-owned and only elevated roles
// may act on it.
func CanAccess(ownerID string, requester models.User) bool {
	if ownerID != "" && ownerID == requester.ID {
		return true
	}
	return requester.Role.Elevated()
}
