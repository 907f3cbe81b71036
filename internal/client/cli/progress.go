package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotLoggedIn = errors.New("not logged in")

// getMultiline is a test seam for GetMultiline.
var getMultiline = GetMultiline

// Courses prints the course catalogue.
func (a *App) Courses(ctx context.Context) error {
	res, err := a.progressService.ListCourses(ctx)
	if err != nil {
		a.log.Error(ctx, "list courses failed", "error", err)
		return err
	}
	if res.Failed() {
		a.reportFailure(ctx, "courses", res.Status)
		return errRejected
	}

	if len(res.Courses) == 0 {
		fmt.Fprintln(a.out, "No courses")
		return nil
	}
	for i, c := range res.Courses {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c.Title())
	}
	return nil
}

// Progress loads and prints the progress of the logged-in user.
func (a *App) Progress(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return errNotLoggedIn
	}

	res, err := a.progressService.LoadProgress(ctx, a.userID)
	if err != nil {
		a.log.Error(ctx, "load progress failed", "error", err)
		return err
	}
	if res.Failed() {
		a.reportFailure(ctx, "progress", res.Status)
		return errRejected
	}

	if len(res.Progress) == 0 || string(res.Progress) == "null" {
		fmt.Fprintln(a.out, "No progress saved yet")
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, res.Progress, "", "  "); err != nil {
		fmt.Fprintln(a.out, string(res.Progress))
		return nil
	}
	fmt.Fprintln(a.out, pretty.String())
	return nil
}

// Save reads a JSON document from the user and stores it as the progress of
// the logged-in user, replacing what the server had.
func (a *App) Save(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return errNotLoggedIn
	}

	text, err := getMultiline(a.reader, "Enter progress as JSON", a.out)
	if err != nil {
		return err
	}
	if !json.Valid([]byte(text)) {
		fmt.Fprintln(a.out, "Progress must be valid JSON")
		return errors.New("invalid progress JSON")
	}

	res, err := a.progressService.SaveProgress(ctx, a.userID, json.RawMessage(text))
	if err != nil {
		a.log.Error(ctx, "save progress failed", "error", err)
		return err
	}
	if res.Failed() {
		a.reportFailure(ctx, "save", res.Status)
		return errRejected
	}

	fmt.Fprintln(a.out, "Saved")
	return nil
}
