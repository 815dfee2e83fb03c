package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"budgettracker/handlers"
	"budgettracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inviteResponse struct {
	Users   []models.UserRef `json:"users"`
	Results []struct {
		Email  string `json:"email"`
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"results"`
}

func TestInviteSingleUser(t *testing.T) {
	e := newTestEnv(t)
	p := e.createProject(t, "Launch", 100)

	rec, env := e.do(t, http.MethodPut, "/invite/"+p.ID,
		map[string]any{"name": "Jane", "email": "jane@x.com"}, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.OK)

	var resp inviteResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "invited", resp.Results[0].Status)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "Jane", resp.Users[0].Name)

	assert.Equal(t, 1, e.invites.count())

	require.Eventually(t, func() bool {
		return e.mail.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	sent := e.mail.last()
	assert.Equal(t, `You're invited to project "Launch"`, sent.Subject)
	require.Len(t, sent.To, 1)
	assert.Equal(t, "jane@x.com", sent.To[0].Email)
	assert.Contains(t, sent.HTML, "http://localhost:3000/projects/"+p.ID)
}

func TestInviteBatchPartialSuccess(t *testing.T) {
	e := newTestEnv(t)
	p := e.createProject(t, "Launch", 100)

	_, env := e.do(t, http.MethodPut, "/invite/"+p.ID,
		map[string]any{"users": []map[string]any{
			{"name": "Jane", "email": "jane@x.com"},
			{"name": "", "email": "bob@x.com"},
		}}, false)
	require.True(t, env.OK)

	var resp inviteResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.Results, 2)

	assert.Equal(t, "invited", resp.Results[0].Status)
	assert.Equal(t, "failed", resp.Results[1].Status)
	assert.Equal(t, "Missing name or email", resp.Results[1].Reason)

	// only the valid entry became a member
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "jane@x.com", resp.Users[0].Email)
	assert.Equal(t, 1, e.invites.count())
}

func TestInviteExistingMemberIsResent(t *testing.T) {
	e := newTestEnv(t)
	p := e.createProject(t, "Launch", 100)

	_, env := e.do(t, http.MethodPut, "/invite/"+p.ID,
		map[string]any{"name": "Jane", "email": "jane@x.com"}, false)
	require.True(t, env.OK)

	_, env = e.do(t, http.MethodPut, "/invite/"+p.ID,
		map[string]any{"name": "Jane", "email": "jane@x.com"}, false)
	require.True(t, env.OK)

	var resp inviteResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "resent", resp.Results[0].Status)
	require.Len(t, resp.Users, 1)

	// each invite still records a row and sends a mail
	assert.Equal(t, 2, e.invites.count())
	require.Eventually(t, func() bool {
		return e.mail.count() == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestInviteValidation(t *testing.T) {
	e := newTestEnv(t)
	p := e.createProject(t, "Launch", 100)

	rec, env := e.do(t, http.MethodPut, "/invite/"+p.ID, map[string]any{}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handlers.CodeInvalidBody, env.Code)

	rec, env = e.do(t, http.MethodPut, "/invite/nope",
		map[string]any{"name": "Jane", "email": "jane@x.com"}, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, handlers.CodeNotFound, env.Code)
}
