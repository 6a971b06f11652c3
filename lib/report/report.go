// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package report renders the human-readable summaries printed after
// conceal and recover.
//
// Styling goes through a lipgloss renderer bound to the destination
// writer. Writers that are not terminals get the Ascii profile, so
// redirected output and tests see plain text.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/bureau-foundation/jdvrif/lib/carrier"
	"github.com/bureau-foundation/jdvrif/lib/fingerprint"
	"github.com/bureau-foundation/jdvrif/lib/platform"
)

// Writer renders reports to one destination.
type Writer struct {
	output io.Writer

	heading lipgloss.Style
	check   lipgloss.Style
	faint   lipgloss.Style
	value   lipgloss.Style
	pin     lipgloss.Style
	warning lipgloss.Style
}

// New returns a Writer on output, with colour when output is a
// terminal.
func New(output io.Writer) *Writer {
	profile := termenv.Ascii
	if file, ok := output.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		profile = termenv.EnvColorProfile()
	}
	return NewWithProfile(output, profile)
}

// NewWithProfile returns a Writer that renders with a fixed colour
// profile.
func NewWithProfile(output io.Writer, profile termenv.Profile) *Writer {
	renderer := lipgloss.NewRenderer(output, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return &Writer{
		output:  output,
		heading: renderer.NewStyle().Bold(true),
		check:   renderer.NewStyle().Foreground(lipgloss.Color("42")),
		faint:   renderer.NewStyle().Foreground(lipgloss.Color("245")),
		value:   renderer.NewStyle().Foreground(lipgloss.Color("75")),
		pin:     renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		warning: renderer.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// FormatPIN returns the PIN as shown to the user.
func FormatPIN(pin uint64) string {
	return fmt.Sprintf("[***%d***]", pin)
}

// Conceal writes the conceal summary, including the recovery PIN.
func (writer *Writer) Conceal(result *carrier.ConcealResult) error {
	var builder strings.Builder
	builder.WriteString("\n")
	builder.WriteString(writer.heading.Render("Platform compatibility for output image:"))
	builder.WriteString("\n\n")
	builder.WriteString(writer.platforms(result.Platforms))

	fmt.Fprintf(&builder, "\nSaved \"file-embedded\" JPG image: %s (%s bytes).\n",
		writer.value.Render(result.OutputPath), writer.value.Render(fmt.Sprint(result.OutputSize)))
	fmt.Fprintf(&builder, "%s %s\n", writer.faint.Render("BLAKE3:"), writer.faint.Render(fingerprint.Format(result.Fingerprint)))

	fmt.Fprintf(&builder, "\nRecovery PIN: %s\n", writer.pin.Render(FormatPIN(result.PIN)))
	builder.WriteString("\n")
	builder.WriteString(writer.warning.Render("Important: Keep your PIN safe, so that you can extract the hidden file."))
	builder.WriteString("\n\nComplete!\n\n")

	_, err := io.WriteString(writer.output, builder.String())
	return err
}

// Recover writes the recover summary.
func (writer *Writer) Recover(result *carrier.RecoverResult) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, "\nExtracted hidden file: %s (%s bytes).\n",
		writer.value.Render(result.OutputPath), writer.value.Render(fmt.Sprint(result.Size)))
	fmt.Fprintf(&builder, "%s %s\n", writer.faint.Render("BLAKE3:"), writer.faint.Render(fingerprint.Format(result.Fingerprint)))
	builder.WriteString("\nComplete! Please check your file.\n\n")

	_, err := io.WriteString(writer.output, builder.String())
	return err
}

// platforms renders one line per platform with notes aligned after the
// longest name.
func (writer *Writer) platforms(platforms []platform.Platform) string {
	width := 0
	for _, entry := range platforms {
		width = max(width, ansi.StringWidth(entry.Name))
	}

	var builder strings.Builder
	for _, entry := range platforms {
		builder.WriteString(" ")
		builder.WriteString(writer.check.Render("✔"))
		builder.WriteString(" ")
		builder.WriteString(entry.Name)
		if entry.Note != "" {
			builder.WriteString(strings.Repeat(" ", width-ansi.StringWidth(entry.Name)+2))
			builder.WriteString(writer.faint.Render("(" + entry.Note + ")"))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
