package repository

import "budgettracker/models"

// InviteRepository records invites sent for a project. Invites are written
// for auditing; no flow reads them back yet.
type InviteRepository interface {
	CreateInvite(invite *models.Invite) error
}
