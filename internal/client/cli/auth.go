package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studykeeper/internal/client/models"
	"github.com/dmitrijs2005/studykeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errRejected marks an operation the endpoint answered with ok=false.
var errRejected = errors.New("rejected by server")

type authCall func(ctx context.Context, username, password string) (*models.AuthResult, error)

// authenticate prompts for credentials, runs call, and on success remembers
// the user. The password buffer is wiped before returning.
func (a *App) authenticate(ctx context.Context, op string, call authCall) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := call(ctx, userName, string(password))
	if err != nil {
		if common.IsValidation(err) {
			fmt.Fprintln(a.out, err.Error())
		} else {
			a.log.Error(ctx, op+" failed", "error", err)
		}
		return err
	}

	if res.Failed() {
		a.reportFailure(ctx, op, res.Status)
		return errRejected
	}
	if res.UserID == "" {
		a.reportFailure(ctx, op, models.Status{Error: models.ErrMsgNoUserID, Raw: res.Raw})
		return errRejected
	}

	a.userName = userName
	a.userID = string(res.UserID)
	a.log.Info(ctx, op+" successful", "usuario_id", a.userID)
	return nil
}

// Register prompts for a username and password and creates the account.
// On success the new user is logged in.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, "register", a.authService.Register)
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, "login", a.authService.Login)
}

// Logout forgets the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	a.userID = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// reportFailure shows a failed result to the user. The raw body of a
// malformed answer only goes to the debug log.
func (a *App) reportFailure(ctx context.Context, op string, st models.Status) {
	fmt.Fprintln(a.out, "Error:", st.Error)
	if st.Raw != "" {
		a.log.Debug(ctx, op+": raw response", "raw", st.Raw)
	}
}
