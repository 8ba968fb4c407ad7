// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/table"
)

type listParams struct {
	cli.JSONOutput
	tableParams
	Width int `flag:"width" desc:"maximum line width (default: terminal width, unlimited when not a terminal)"`
}

// listEntry is one command as shown by list.
type listEntry struct {
	Name    string   `json:"name"`
	Mode    string   `json:"mode"`
	Options []string `json:"options"`
	Inputs  []string `json:"inputs"`
	Action  string   `json:"action"`
}

type listResult struct {
	Table       string      `json:"table"`
	Description string      `json:"description,omitempty"`
	Commands    []listEntry `json:"commands"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "Show a table's commands",
		Description: `List the commands of a table in priority order with their match
mode, options, input patterns, and action. Output is styled when
stdout is a terminal and truncated to the terminal width.`,
		Params: &params,
		Run: func(streams cli.Streams, args []string) error {
			session, err := params.open("list", streams)
			if err != nil {
				return err
			}
			loaded, err := session.loadTable(&params.tableParams)
			if err != nil {
				return err
			}

			result := listResult{
				Table:       loaded.Name,
				Description: loaded.Description,
				Commands:    listEntries(loaded),
			}
			return params.Report(streams.Out, result, func(w io.Writer) error {
				terminal, terminalWidth := terminalOf(w)
				width := params.Width
				if width == 0 {
					width = terminalWidth
				}
				return renderList(w, result, width, terminal)
			})
		},
	}
}

func listEntries(loaded *table.Table) []listEntry {
	entries := make([]listEntry, 0, len(loaded.Commands))
	for index, command := range loaded.Commands {
		mode := command.Mode
		if mode == "" {
			mode = "exact"
		}
		entries = append(entries, listEntry{
			Name:    command.DisplayName(index),
			Mode:    mode,
			Options: append([]string{}, command.Options...),
			Inputs:  append([]string{}, command.Inputs...),
			Action:  describeAction(command),
		})
	}
	return entries
}

// describeAction summarizes a command's print and emit actions.
func describeAction(command table.Command) string {
	var parts []string
	if command.Print != "" {
		parts = append(parts, fmt.Sprintf("print %q", command.Print))
	}
	if len(command.Emit) > 0 {
		parts = append(parts, "emit "+strings.Join(command.Emit, " "))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "; ")
}

// terminalOf reports whether w is a terminal and its width.
func terminalOf(w io.Writer) (bool, int) {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return false, 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return true, 0
	}
	return true, width
}

// renderList writes the command listing. Styling uses the ANSI256
// profile when styled is set and no escapes otherwise. A positive
// width caps each line, shrinking columns proportionally.
func renderList(w io.Writer, result listResult, width int, styled bool) error {
	profile := termenv.Ascii
	if styled {
		profile = termenv.ANSI256
	}
	// SetColorProfile is needed as well: the renderer otherwise
	// re-detects the profile from w.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	titleStyle := renderer.NewStyle().Bold(true)
	headerStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle := renderer.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle := renderer.NewStyle().Foreground(lipgloss.Color("8"))

	title := titleStyle.Render(result.Table)
	if result.Description != "" {
		title += " " + mutedStyle.Render(result.Description)
	}
	if width > 0 {
		title = ansi.Truncate(title, width, "…")
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	headers := []string{"NAME", "MODE", "OPTIONS", "INPUTS", "ACTION"}
	rows := make([][]string, 0, len(result.Commands))
	for _, entry := range result.Commands {
		rows = append(rows, []string{
			entry.Name,
			entry.Mode,
			joinOrDash(entry.Options),
			joinOrDash(entry.Inputs),
			entry.Action,
		})
	}

	widths := columnWidths(headers, rows, width)
	if _, err := fmt.Fprintln(w, formatRow(headers, widths, headerStyle, nil)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, formatRow(row, widths, renderer.NewStyle(), &nameStyle)); err != nil {
			return err
		}
	}
	return nil
}

const columnSeparator = "  "

// columnWidths sizes each column to its widest cell. When the total
// exceeds limit, columns shrink proportionally to a minimum of 3.
func columnWidths(headers []string, rows [][]string, limit int) []int {
	widths := make([]int, len(headers))
	for index, cell := range headers {
		widths[index] = lipgloss.Width(cell)
	}
	for _, row := range rows {
		for index, cell := range row {
			if cellWidth := lipgloss.Width(cell); cellWidth > widths[index] {
				widths[index] = cellWidth
			}
		}
	}
	if limit <= 0 {
		return widths
	}

	total := len(columnSeparator) * (len(widths) - 1)
	for _, columnWidth := range widths {
		total += columnWidth
	}
	if total <= limit {
		return widths
	}

	usable := limit - len(columnSeparator)*(len(widths)-1)
	contentTotal := total - len(columnSeparator)*(len(widths)-1)
	for index := range widths {
		widths[index] = max(widths[index]*usable/contentTotal, 3)
	}
	return widths
}

// formatRow truncates and pads cells to their column widths. The first
// cell uses firstStyle when it is not nil.
func formatRow(cells []string, widths []int, style lipgloss.Style, firstStyle *lipgloss.Style) string {
	parts := make([]string, len(widths))
	for index, columnWidth := range widths {
		cell := ""
		if index < len(cells) {
			cell = cells[index]
		}
		if lipgloss.Width(cell) > columnWidth {
			cell = ansi.Truncate(cell, columnWidth, "…")
		}
		padding := strings.Repeat(" ", max(columnWidth-lipgloss.Width(cell), 0))

		cellStyle := style
		if index == 0 && firstStyle != nil {
			cellStyle = *firstStyle
		}
		parts[index] = cellStyle.Render(cell) + padding
	}
	return strings.TrimRight(strings.Join(parts, columnSeparator), " ")
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, " ")
}
