package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studykeeper/internal/client/models"
	"github.com/dmitrijs2005/studykeeper/internal/logging"
	"github.com/google/uuid"
)

var ErrNoEndpoint = errors.New("endpoint URL is required")

type HTTPClient struct {
	endpointURL string
	poster      Poster
	log         logging.Logger
}

// NewHTTPClient returns a client posting to endpointURL through poster.
// A nil logger disables logging.
func NewHTTPClient(endpointURL string, poster Poster, log logging.Logger) (*HTTPClient, error) {
	if endpointURL == "" {
		return nil, ErrNoEndpoint
	}
	if poster == nil {
		return nil, errors.New("poster is required")
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{endpointURL: endpointURL, poster: poster, log: log}, nil
}

// call sends req and returns the raw answer text.
func (c *HTTPClient) call(ctx context.Context, req models.Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode %s request: %w", req.Action, err)
	}

	log := c.log.With("action", string(req.Action), "request_id", uuid.NewString())
	log.Debug(ctx, "request sent", "bytes", len(body))

	text, err := c.poster.Post(ctx, c.endpointURL, body)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", req.Action, err)
	}

	log.Debug(ctx, "response received", "bytes", len(text))
	return text, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, passwordHash string) (*models.AuthResult, error) {
	text, err := c.call(ctx, models.NewRegisterRequest(username, passwordHash))
	if err != nil {
		return nil, err
	}
	return models.DecodeAuth(text), nil
}

func (c *HTTPClient) Login(ctx context.Context, username, passwordHash string) (*models.AuthResult, error) {
	text, err := c.call(ctx, models.NewLoginRequest(username, passwordHash))
	if err != nil {
		return nil, err
	}
	return models.DecodeAuth(text), nil
}

func (c *HTTPClient) ListCourses(ctx context.Context) (*models.CoursesResult, error) {
	text, err := c.call(ctx, models.NewListCoursesRequest())
	if err != nil {
		return nil, err
	}
	return models.DecodeCourses(text), nil
}

func (c *HTTPClient) LoadProgress(ctx context.Context, userID string) (*models.ProgressResult, error) {
	text, err := c.call(ctx, models.NewLoadProgressRequest(userID))
	if err != nil {
		return nil, err
	}
	return models.DecodeProgress(text), nil
}

// SaveProgress sends progress as-is. It must be valid JSON, otherwise the
// envelope cannot be encoded and an error is returned without a request.
func (c *HTTPClient) SaveProgress(ctx context.Context, userID string, progress json.RawMessage) (*models.SaveResult, error) {
	text, err := c.call(ctx, models.NewSaveProgressRequest(userID, progress))
	if err != nil {
		return nil, err
	}
	return models.DecodeSave(text), nil
}
