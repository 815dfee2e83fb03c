package handlers_test

import (
	"fmt"
	"sync"
	"time"

	"budgettracker/models"
)

// In-memory repositories backing handler tests. They mirror the real
// implementations' contract: (nil, nil) for missing records, newest-first
// listings, defaults applied on create. Mutex-guarded because background
// budget checks read them concurrently.

type memProjects struct {
	mu    sync.Mutex
	seq   int
	items []*models.Project
}

func (m *memProjects) CreateProject(p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if p.ID == "" {
		p.ID = fmt.Sprintf("p%d", m.seq)
	}
	if p.Users == nil {
		p.Users = []string{}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	cp := *p
	m.items = append(m.items, &cp)
	return nil
}

func (m *memProjects) GetAllProjects() ([]*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Project, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		cp := *m.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memProjects) GetProjectByID(id string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProjects) UpdateProject(p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.items {
		if existing.ID == p.ID {
			p.UpdatedAt = time.Now().UTC()
			cp := *p
			m.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (m *memProjects) DeleteProject(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type memExpenses struct {
	mu    sync.Mutex
	seq   int
	items []*models.Expense
}

func (m *memExpenses) CreateExpense(e *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if e.ID == "" {
		e.ID = fmt.Sprintf("e%d", m.seq)
	}
	if e.Category == "" {
		e.Category = models.CategoryOther
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	m.items = append(m.items, &cp)
	return nil
}

func (m *memExpenses) GetExpenses(projectID string) ([]*models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.Expense{}
	for i := len(m.items) - 1; i >= 0; i-- {
		if projectID != "" && m.items[i].ProjectID != projectID {
			continue
		}
		cp := *m.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memExpenses) GetExpenseByID(id string) (*models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.items {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memExpenses) UpdateExpense(e *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.items {
		if existing.ID == e.ID {
			e.UpdatedAt = time.Now().UTC()
			cp := *e
			m.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (m *memExpenses) DeleteExpense(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.items {
		if e.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memExpenses) DeleteExpensesByProject(projectID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, e := range m.items {
		if e.ProjectID != projectID {
			kept = append(kept, e)
		}
	}
	m.items = kept
	return nil
}

type memUsers struct {
	mu    sync.Mutex
	seq   int
	items []*models.User
}

func (m *memUsers) CreateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if u.ID == "" {
		u.ID = fmt.Sprintf("u%d", m.seq)
	}
	if u.Avatar == "" {
		u.Avatar = models.DefaultAvatar
	}
	if u.Role == "" {
		u.Role = "user"
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	m.items = append(m.items, &cp)
	return nil
}

func (m *memUsers) GetUserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetUsersByIDs(ids []string) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.User{}
	for _, u := range m.items {
		for _, id := range ids {
			if u.ID == id {
				cp := *u
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (m *memUsers) UpdateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.items {
		if existing.ID == u.ID {
			u.UpdatedAt = time.Now().UTC()
			cp := *u
			m.items[i] = &cp
			return nil
		}
	}
	return nil
}

type memInvites struct {
	mu    sync.Mutex
	seq   int
	items []*models.Invite
}

func (m *memInvites) CreateInvite(in *models.Invite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if in.ID == "" {
		in.ID = fmt.Sprintf("i%d", m.seq)
	}
	if in.Status == "" {
		in.Status = models.InviteStatusPending
	}
	cp := *in
	m.items = append(m.items, &cp)
	return nil
}

func (m *memInvites) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
