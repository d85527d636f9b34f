package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Save(ctx context.Context, text string) error
	List(ctx context.Context) error
	Copy(ctx context.Context, n int) error
}

// runREPL starts a simple read–eval–print loop for the SaveBank CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	help            show available commands
//	save [text]     save text; without text, prompt for a multi-line string
//	l | list        list saves, newest first
//	c | copy N      copy save N of the last listing
//	exit | quit     leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if p := promptFn(); p != "" {
			printlnFn(p)
		}
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: save [text], (l)ist, (c)opy N, exit")

		case "save":
			_ = a.Save(ctx, saveArgument(line))

		case "l", "list":
			_ = a.List(ctx)

		case "c", "copy":
			if len(parts) != 2 {
				printlnFn("Usage: copy N")
				continue
			}
			var n int
			if _, err := fmt.Sscan(parts[1], &n); err != nil {
				printlnFn("Not a number:", parts[1])
				continue
			}
			_ = a.Copy(ctx, n)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// saveArgument returns the text after the save command, with the single
// separating space removed and everything else kept.
func saveArgument(line string) string {
	rest := strings.TrimLeft(line, " \t")
	rest = strings.TrimPrefix(rest, "save")
	if len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
		rest = rest[1:]
	}
	return rest
}
