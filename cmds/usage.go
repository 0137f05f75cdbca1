package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintf(os.Stdout, "usage of %s:\n", os.Args[0])
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, indent int) {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		printed[command] = true

		line := strings.Repeat("  ", indent) + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\n" + strings.Repeat("  ", indent+1) + command.Description
		}
		fmt.Fprintln(os.Stdout, line)

		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
