package client

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL chrome (prompt, help, unknown command).
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Search(ctx context.Context, term string) error
	History(ctx context.Context) error
	List(ctx context.Context, limit, offset string) error
	Navigate(r Route)
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line from reader, giving up when ctx is done. A read
// abandoned on cancellation stays parked until the process exits, so the
// caller must not read from reader again after a context error.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// runREPL reads one command per line and dispatches it to a. Commands run
// to completion before the next line is read. The loop exits on EOF, on
// "exit"/"quit" or when ctx is cancelled. Handlers render their own errors.
//
// reader is shared with the credential prompts, so it must be the same
// *bufio.Reader the App was built with. Only one line read is in flight at
// a time, and none while a command runs.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			printlnFn("Bye!")
			return
		}
		printlnFn(fmt.Sprintf("poke %s > ", statusFn()))
		line, err := readLine(ctx, reader)
		if ctx.Err() != nil {
			printlnFn("Bye!")
			return
		}
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search <term>, history, list [limit] [offset], open <route>, logout, exit")
			} else {
				printlnFn("Available commands: login, register, open <route>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "s", "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "history":
			_ = a.History(ctx)

		case "l", "list":
			var limit, offset string
			if len(args) > 0 {
				limit = args[0]
			}
			if len(args) > 1 {
				offset = args[1]
			}
			_ = a.List(ctx, limit, offset)

		case "open":
			route := ""
			if len(args) > 0 {
				route = args[0]
			}
			a.Navigate(ParseRoute(route))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Run drives the App from its input until EOF or exit.
func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, func() string { return string(a.Route()) }, a.reader)
}
