package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Courses(ctx context.Context) error
	Progress(ctx context.Context) error
	Save(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - courses        — list the course catalogue
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - progress       — show saved progress
//	  - save           — replace saved progress with a JSON document
//	  - logout         — forget the current user
//
// Errors returned by handlers are ignored here; handlers report them to the
// user themselves. Cancelling ctx ends the loop even while it waits for input.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sk %s> ", statusFn()))

		line, ok := readLine(ctx, reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: courses, progress, save, logout, exit")
			} else {
				printlnFn("Available commands: register, login, courses, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "courses", "c":
			_ = a.Courses(ctx)

		case "progress", "p":
			_ = a.Progress(ctx)

		case "save":
			_ = a.Save(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line from reader, giving up when ctx is done. A read
// abandoned on cancellation finishes in the background; the REPL does not
// touch reader again afterwards.
func readLine(ctx context.Context, reader *bufio.Reader) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", false
	case r := <-ch:
		if r.err != nil && r.line == "" {
			return "", false
		}
		return r.line, true
	}
}
