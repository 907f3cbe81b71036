package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/studykeeper/internal/client/models"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	mu sync.Mutex

	RegisterRet *models.AuthResult
	RegisterErr error
	LoginRet    *models.AuthResult
	LoginErr    error
	CoursesRet  *models.CoursesResult
	CoursesErr  error
	LoadRet     *models.ProgressResult
	LoadErr     error
	SaveRet     *models.SaveResult
	SaveErr     error

	Calls []string

	LastUsername     string
	LastPasswordHash string
	LastUserID       string
	LastProgress     json.RawMessage
}

// record appends name to Calls and runs set, both under mu.
func (f *fakeClient) record(name string, set ...func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
	for _, fn := range set {
		fn()
	}
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *fakeClient) Register(_ context.Context, username, passwordHash string) (*models.AuthResult, error) {
	f.record("register", func() { f.LastUsername, f.LastPasswordHash = username, passwordHash })
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, username, passwordHash string) (*models.AuthResult, error) {
	f.record("login", func() { f.LastUsername, f.LastPasswordHash = username, passwordHash })
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListCourses(context.Context) (*models.CoursesResult, error) {
	f.record("list_materias")
	return f.CoursesRet, f.CoursesErr
}

func (f *fakeClient) LoadProgress(_ context.Context, userID string) (*models.ProgressResult, error) {
	f.record("load_progress", func() { f.LastUserID = userID })
	return f.LoadRet, f.LoadErr
}

func (f *fakeClient) SaveProgress(_ context.Context, userID string, progress json.RawMessage) (*models.SaveResult, error) {
	f.record("save_progress", func() { f.LastUserID, f.LastProgress = userID, progress })
	return f.SaveRet, f.SaveErr
}
