package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Settings(ctx context.Context) error
	Set(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
	Plans(ctx context.Context) error
	Chat(ctx context.Context, text string) error
	History(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
//	Not logged in:
//	  - help, register, login, plans, settings, set, reset, exit | quit
//
//	Logged in:
//	  - help, whoami, chat <text>, history, plans, settings,
//	    set <key> <value>, reset, logout, exit | quit
//
// Handler errors are printed and the loop continues. The loop ends on EOF
// or exit/quit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cobragpt %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, chat <text>, history, plans, settings, set <key> <value>, reset, logout, exit")
			} else {
				printlnFn("Available commands: register, login, plans, settings, set <key> <value>, reset, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.Whoami(ctx)

		case "settings":
			cmdErr = a.Settings(ctx)

		case "set":
			cmdErr = a.Set(ctx, args)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "plans":
			cmdErr = a.Plans(ctx)

		case "chat":
			cmdErr = a.Chat(ctx, strings.Join(args, " "))

		case "history":
			cmdErr = a.History(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
	}
}
