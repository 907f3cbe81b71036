package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/studykeeper/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, username, passwordHash string) (*models.AuthResult, error)
	Login(ctx context.Context, username, passwordHash string) (*models.AuthResult, error)
	ListCourses(ctx context.Context) (*models.CoursesResult, error)
	LoadProgress(ctx context.Context, userID string) (*models.ProgressResult, error)
	SaveProgress(ctx context.Context, userID string, progress json.RawMessage) (*models.SaveResult, error)
}

// Poster delivers one request body to endpoint and returns the response body
// as text. netx.TextPoster is the production implementation.
type Poster interface {
	Post(ctx context.Context, endpoint string, body []byte) (string, error)
}
