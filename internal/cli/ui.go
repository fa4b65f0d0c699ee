package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // teal - primary values
	colorGreen = lipgloss.Color("35")  // green - success
	colorBlue  = lipgloss.Color("75")  // light blue - links
	colorWhite = lipgloss.Color("255") // bright white - values
	colorDim   = lipgloss.Color("240") // dim gray - muted text
)

var (
	// styleTitle for section headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleLabel for key names in key/value output.
	styleLabel = lipgloss.NewStyle().Foreground(colorDim)

	// styleValue for data values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleNumber for numeric values.
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// styleLink for URLs.
	styleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

const iconSuccess = "✓"

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printField prints an aligned, styled key/value line.
func printField(label string, value string) {
	fmt.Printf("%s %s\n", styleLabel.Render(fmt.Sprintf("%-12s", label+":")), styleValue.Render(value))
}

// printNumber prints an aligned key/value line with a numeric value.
func printNumber(label string, value int) {
	fmt.Printf("%s %s\n", styleLabel.Render(fmt.Sprintf("%-12s", label+":")), styleNumber.Render(fmt.Sprintf("%d", value)))
}
