package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Command represents a CLI command with common functionality
type Command struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Run         func(ctx context.Context, args []string) error

	out io.Writer
}

// PrintUsage prints standardized usage information
func (c *Command) PrintUsage() {
	fmt.Fprintf(c.out, "%s\n\n", c.Description)
	fmt.Fprintf(c.out, "USAGE:\n    %s\n\n", c.Usage)
	if len(c.Examples) > 0 {
		fmt.Fprintf(c.out, "EXAMPLES:\n")
		for _, example := range c.Examples {
			fmt.Fprintf(c.out, "    %s\n", example)
		}
	}
}

// CommandRegistry manages all CLI commands
type CommandRegistry struct {
	commands map[string]*Command
	order    []string
	out      io.Writer
}

// NewCommandRegistry creates a new command registry writing help to out
func NewCommandRegistry(out io.Writer) *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]*Command),
		out:      out,
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *Command) {
	cmd.out = r.out
	if _, exists := r.commands[cmd.Name]; !exists {
		r.order = append(r.order, cmd.Name)
	}
	r.commands[cmd.Name] = cmd
}

// Execute runs the appropriate command based on args
func (r *CommandRegistry) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		r.PrintHelp()
		return errors.New("no command specified")
	}

	cmdName := args[0]
	switch cmdName {
	case "help", "-h", "--help":
		r.PrintHelp()
		return nil
	}

	cmd, ok := r.commands[cmdName]
	if !ok {
		r.PrintHelp()
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	err := cmd.Run(ctx, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		cmd.PrintUsage()
		return nil
	}
	return err
}

// PrintHelp prints overall CLI help
func (r *CommandRegistry) PrintHelp() {
	fmt.Fprintln(r.out, "codejam - command line client for the CodeJam API")
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "USAGE:")
	fmt.Fprintln(r.out, "    codejam <command> [arguments]")
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "COMMANDS:")
	for _, name := range r.order {
		cmd := r.commands[name]
		fmt.Fprintf(r.out, "    %-12s %s\n", cmd.Name, cmd.Description)
	}
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "Run 'codejam <command> -h' for more information on a command.")
}

// TableWriter provides simple table formatting
type TableWriter struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTableWriter creates a new table writer
func NewTableWriter(headers ...string) *TableWriter {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &TableWriter{
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *TableWriter) AddRow(row ...string) {
	t.rows = append(t.rows, row)
	for i, cell := range row {
		if i < len(t.widths) && len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
}

// Print writes the table to w
func (t *TableWriter) Print(w io.Writer) {
	t.printRow(w, t.headers)
	parts := make([]string, len(t.widths))
	for i, width := range t.widths {
		parts[i] = strings.Repeat("-", width)
	}
	t.printRow(w, parts)
	for _, row := range t.rows {
		t.printRow(w, row)
	}
}

func (t *TableWriter) printRow(w io.Writer, row []string) {
	cells := make([]string, 0, len(t.widths))
	for i, width := range t.widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells = append(cells, fmt.Sprintf("%-*s", width, cell))
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
}
