package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"referral-service/internal/data/entity"
)

// mockUserRepo is an in-memory stand-in for the Mongo-backed repository.
// It keeps users in insertion order, which doubles as store order for
// StreamAll and FindByEmailsWhereProfileCompleted.
type mockUserRepo struct {
	mu    sync.Mutex
	users []*entity.User

	saveErr      error
	saveErrEmail string
	streamErr    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.ReferredUsers != nil {
		c.ReferredUsers = append([]string(nil), u.ReferredUsers...)
	}
	return &c
}

func (m *mockUserRepo) Insert(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	m.users = append(m.users, cloneUser(user))
	return nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmailAndPassword(_ context.Context, email, password string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email && u.Password == password {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByReferralCode(_ context.Context, code string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ReferralCode == code {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmailsWhereProfileCompleted(_ context.Context, emails []string) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wanted := make(map[string]bool, len(emails))
	for _, e := range emails {
		wanted[e] = true
	}

	var out []*entity.User
	for _, u := range m.users {
		if u.ProfileCompleted && wanted[u.Email] {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (m *mockUserRepo) Save(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil && (m.saveErrEmail == "" || m.saveErrEmail == user.Email) {
		return m.saveErr
	}

	for i, u := range m.users {
		if u.ID == user.ID {
			m.users[i] = cloneUser(user)
			return nil
		}
	}
	m.users = append(m.users, cloneUser(user))
	return nil
}

func (m *mockUserRepo) StreamAll(_ context.Context, fn func(*entity.User) error) error {
	m.mu.Lock()
	snapshot := make([]*entity.User, len(m.users))
	for i, u := range m.users {
		snapshot[i] = cloneUser(u)
	}
	streamErr := m.streamErr
	m.mu.Unlock()

	if streamErr != nil {
		return streamErr
	}

	for _, u := range snapshot {
		if err := fn(u); err != nil {
			return err
		}
	}
	return nil
}

// byEmail fetches the stored record directly, bypassing the repository API
func (m *mockUserRepo) byEmail(email string) *entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return cloneUser(u)
		}
	}
	return nil
}

func (m *mockUserRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// fakeCodeGenerator hands out a fixed sequence of codes
type fakeCodeGenerator struct {
	codes []string
	next  int
}

func (g *fakeCodeGenerator) Generate() (string, error) {
	if g.next >= len(g.codes) {
		return "", fmt.Errorf("fake generator exhausted after %d codes", g.next)
	}
	code := g.codes[g.next]
	g.next++
	return code, nil
}
