// SPDX-License-Identifier: MIT

package report

import "github.com/charmbracelet/lipgloss"

var (
	colorTitle = lipgloss.Color("#8B5CF6")
	colorLabel = lipgloss.Color("#94A3B8")
)
