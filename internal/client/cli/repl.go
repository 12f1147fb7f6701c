package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// runREPL reads one command per line from reader and dispatches it to cmds.
// "help" lists the commands, "exit" or "quit" leaves. Command errors are
// printed and the loop continues. The loop also ends on EOF.
func runREPL(ctx context.Context, cmds map[string]command, statusFn func() string, reader *bufio.Reader) {
	for {
		prompt := "ck"
		if s := statusFn(); s != "" {
			prompt += " (" + s + ")"
		}
		printlnFn(prompt + " >")

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn("Available commands: " + strings.Join(commandNames(cmds), ", ") + ", help, exit")
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			cmd, ok := cmds[name]
			if !ok {
				printlnFn("Unknown command:", name)
				continue
			}
			if err := cmd(ctx, args); err != nil {
				printlnFn(errorStyle.Render("Error: " + err.Error()))
			}
		}

		if err != nil {
			return
		}
	}
}

func commandNames(cmds map[string]command) []string {
	names := make([]string, 0, len(cmds))
	for n := range cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
