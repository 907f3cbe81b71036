package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/studykeeper/internal/client/client"
	"github.com/dmitrijs2005/studykeeper/internal/client/models"
)

// ProgressService exposes the course catalogue and per-user progress.
// Results are returned exactly as the endpoint reported them; the progress
// payload is opaque to the client.
type ProgressService interface {
	ListCourses(ctx context.Context) (*models.CoursesResult, error)
	LoadProgress(ctx context.Context, userID string) (*models.ProgressResult, error)
	SaveProgress(ctx context.Context, userID string, progress json.RawMessage) (*models.SaveResult, error)
}

type progressService struct {
	client client.Client
}

func NewProgressService(c client.Client) ProgressService {
	return &progressService{client: c}
}

func (s *progressService) ListCourses(ctx context.Context) (*models.CoursesResult, error) {
	return s.client.ListCourses(ctx)
}

func (s *progressService) LoadProgress(ctx context.Context, userID string) (*models.ProgressResult, error) {
	return s.client.LoadProgress(ctx, userID)
}

func (s *progressService) SaveProgress(ctx context.Context, userID string, progress json.RawMessage) (*models.SaveResult, error) {
	return s.client.SaveProgress(ctx, userID, progress)
}
