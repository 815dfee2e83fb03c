package handlers

import (
	"strings"

	"budgettracker/models"
	"budgettracker/repository"
)

// findOrCreateUserByEmail resolves an email to an existing user or creates
// one. New users without an explicit name get the email local-part.
func findOrCreateUserByEmail(users repository.UserRepository, email, name string) (*models.User, error) {
	user, err := users.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	user = &models.User{
		Name:  name,
		Email: email,
	}
	if err := users.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// memberRefs resolves a project's member IDs into the trimmed shape embedded
// in responses.
func memberRefs(users repository.UserRepository, ids []string) ([]models.UserRef, error) {
	members, err := users.GetUsersByIDs(ids)
	if err != nil {
		return nil, err
	}
	refs := make([]models.UserRef, 0, len(members))
	for _, u := range members {
		refs = append(refs, u.Ref())
	}
	return refs, nil
}
