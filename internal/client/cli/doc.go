// Package cli provides the interactive StudyKeeper command-line client.
//
// It wires configuration, the HTTP client, the auth and progress services,
// and a REPL. The logged-in user id is kept in memory for the lifetime of
// the process only; nothing is written to disk.
//
// Key features:
//   - Register / Login / Logout
//   - List the course catalogue
//   - Show and save the progress of the logged-in user
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or ctx is cancelled (Ctrl-C in cmd/cli).
//
// Passwords are read without echo when stdin is a terminal. When stdin is a
// pipe or file, the password is the next input line, read through the same
// buffered reader as every other prompt, so scripted sessions such as
//
//	printf 'login\nalice\nAbcdefg1\ncourses\nexit\n' | studykeeper
//
// work as typed.
package cli
