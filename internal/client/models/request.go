// Package models holds the envelopes exchanged with the remote endpoint.
package models

import "encoding/json"

// Action is the request discriminant understood by the remote endpoint.
type Action string

const (
	ActionRegister     Action = "register"
	ActionLogin        Action = "login"
	ActionListCourses  Action = "list_materias"
	ActionLoadProgress Action = "load_progress"
	ActionSaveProgress Action = "save_progress"
)

// Request is the outbound envelope. Fields an action does not use are
// omitted from the JSON body.
type Request struct {
	Action       Action          `json:"action"`
	Username     string          `json:"username,omitempty"`
	PasswordHash string          `json:"password_hash,omitempty"`
	UserID       string          `json:"usuario_id,omitempty"`
	Progress     json.RawMessage `json:"progreso,omitempty"`
}

func NewRegisterRequest(username, passwordHash string) Request {
	return Request{Action: ActionRegister, Username: username, PasswordHash: passwordHash}
}

func NewLoginRequest(username, passwordHash string) Request {
	return Request{Action: ActionLogin, Username: username, PasswordHash: passwordHash}
}

func NewListCoursesRequest() Request {
	return Request{Action: ActionListCourses}
}

func NewLoadProgressRequest(userID string) Request {
	return Request{Action: ActionLoadProgress, UserID: userID}
}

func NewSaveProgressRequest(userID string, progress json.RawMessage) Request {
	return Request{Action: ActionSaveProgress, UserID: userID, Progress: progress}
}
