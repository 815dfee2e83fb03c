package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"budgettracker/models"
	"budgettracker/repository"
	"budgettracker/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type InviteHandler struct {
	Projects repository.ProjectRepository
	Users    repository.UserRepository
	Invites  repository.InviteRepository
	Mailer   *services.Mailer
	AppURL   string
	Log      *slog.Logger
}

type invitee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type inviteResult struct {
	Email  string `json:"email"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Invite adds one or many users to a project by email. Entries are processed
// independently: a bad entry is marked failed and the rest continue.
// Membership changes are persisted once after the whole batch.
func (h *InviteHandler) Invite(w http.ResponseWriter, r *http.Request) {
	project, err := h.Projects.GetProjectByID(chi.URLParam(r, "projectId"))
	if err != nil {
		h.Log.Error("get project", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, CodeNotFound)
		return
	}

	var body struct {
		invitee
		Users []invitee `json:"users"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	var invitees []invitee
	switch {
	case len(body.Users) > 0:
		invitees = body.Users
	case body.Email != "" && body.Name != "":
		invitees = []invitee{body.invitee}
	default:
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	results := make([]inviteResult, 0, len(invitees))
	for _, in := range invitees {
		if in.Email == "" || in.Name == "" {
			results = append(results, inviteResult{
				Email:  in.Email,
				Status: "failed",
				Reason: "Missing name or email",
			})
			continue
		}

		user, err := findOrCreateUserByEmail(h.Users, in.Email, in.Name)
		if err != nil {
			h.Log.Error("find or create user", "email", in.Email, "error", err)
			respondError(w, http.StatusInternalServerError, CodeServerError)
			return
		}

		alreadyInProject := project.HasUser(user.ID)
		if !alreadyInProject {
			project.Users = append(project.Users, user.ID)
		}

		if err := h.Invites.CreateInvite(&models.Invite{
			ProjectID: project.ID,
			Email:     in.Email,
			Token:     uuid.NewString(),
		}); err != nil {
			h.Log.Warn("record invite", "email", in.Email, "error", err)
		}

		h.sendInviteEmail(project, in)

		status := "invited"
		if alreadyInProject {
			status = "resent"
		}
		results = append(results, inviteResult{Email: in.Email, Status: status})
	}

	if err := h.Projects.UpdateProject(project); err != nil {
		h.Log.Error("update project members", "project", project.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	users, err := memberRefs(h.Users, project.Users)
	if err != nil {
		h.Log.Error("resolve project members", "project", project.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	respondOK(w, map[string]any{"users": users, "results": results})
}

func (h *InviteHandler) sendInviteEmail(project *models.Project, in invitee) {
	subject := fmt.Sprintf("You're invited to project %q", project.Name)
	html := fmt.Sprintf(`<p>Hello %s,</p>
		<p>You have been invited to join the project <strong>%s</strong>.</p>
		<p><a href="%s/projects/%s">Click here to join</a></p>`,
		in.Name, project.Name, h.AppURL, project.ID)

	services.Dispatch(h.Log, "invite email", func(ctx context.Context) error {
		return h.Mailer.Send(ctx, []services.Recipient{{Email: in.Email, Name: in.Name}}, subject, html)
	})
}
