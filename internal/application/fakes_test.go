package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
)

// memUserRepo is an in-memory UserRepository that records the calls it receives.
type memUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	nextID int
	calls  []string

	getByIDErr error
	pageFn     func(page, perPage int, name, email string) ([]entity.UserView, int, error)
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) record(call string) {
	r.calls = append(r.calls, call)
}

func (r *memUserRepo) called(call string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (r *memUserRepo) GetUsersByPage(_ context.Context, page, perPage int, name, email string) ([]entity.UserView, int, error) {
	r.mu.Lock()
	r.record("GetUsersByPage")
	r.mu.Unlock()
	if r.pageFn != nil {
		return r.pageFn(page, perPage, name, email)
	}
	return []entity.UserView{}, 0, nil
}

func (r *memUserRepo) GetAll(context.Context) ([]entity.UserView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("GetAll")
	out := make([]entity.UserView, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.View())
	}
	return out, nil
}

func (r *memUserRepo) Search(_ context.Context, name string) ([]entity.UserView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Search")
	out := []entity.UserView{}
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(name)) {
			out = append(out, u.View())
		}
	}
	return out, nil
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Create")
	if !u.Ready() {
		return errors.New("user not ready for persistence")
	}
	r.nextID++
	u.ID = fmt.Sprintf("u-%d", r.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Update")
	if _, ok := r.users[u.ID]; !ok {
		return apperror.NotFound("user not found")
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Delete")
	if _, ok := r.users[id]; !ok {
		return apperror.NotFound("user not found")
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) DeleteUserTasks(context.Context, string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("DeleteUserTasks")
	return nil
}

func (r *memUserRepo) CheckUserByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("CheckUserByEmail")
	for _, u := range r.users {
		if u.Email == email {
			return apperror.Conflict("email already exists")
		}
	}
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("GetByEmail")
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("GetByID")
	if r.getByIDErr != nil {
		return nil, r.getByIDErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	cp := *u
	return &cp, nil
}

// memCache is a map-backed UserCache.
type memCache struct {
	mu      sync.Mutex
	entries map[string]entity.UserView
	gets    int
	getErr  error
	setErr  error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]entity.UserView{}}
}

func (c *memCache) Get(_ context.Context, id string) (*entity.UserView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.entries[id]
	if !ok {
		return nil, false, nil
	}
	return &v, true, nil
}

func (c *memCache) Set(_ context.Context, v entity.UserView) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[v.ID] = v
	return nil
}

func (c *memCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

func (c *memCache) entry(id string) (entity.UserView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[id]
	return v, ok
}

// plainHasher is a fast PasswordHasher for tests.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (plainHasher) Compare(hash, plain string) bool { return hash == "hashed:"+plain }

type fakeIndex struct {
	indexed map[string]entity.UserView
	removed []string
	err     error
	results []entity.UserView
	size    int
}

func (f *fakeIndex) Index(_ context.Context, v entity.UserView) error {
	if f.indexed == nil {
		f.indexed = map[string]entity.UserView{}
	}
	f.indexed[v.ID] = v
	return f.err
}

func (f *fakeIndex) Remove(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return f.err
}

func (f *fakeIndex) Search(_ context.Context, _ string, size int) ([]entity.UserView, error) {
	f.size = size
	return f.results, nil
}

type fakePublisher struct {
	types []string
	err   error
}

func (f *fakePublisher) PublishJSON(_ context.Context, msgType string, _ any) error {
	f.types = append(f.types, msgType)
	return f.err
}

type fakeAvatars struct {
	data        string
	contentType string
}

func (f *fakeAvatars) Upload(_ context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.data = string(b)
	f.contentType = contentType
	return "https://cdn.test/avatars/" + userID + "/" + filename, nil
}
