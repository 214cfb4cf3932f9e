package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// campusdash colour palette — indigo/teal on dark terminal.
var (
	colPrimary   = lipgloss.Color("#6366F1") // indigo  — brand colour
	colPrimaryLt = lipgloss.Color("#A5B4FC") // indigo light
	colSuccess   = lipgloss.Color("#10B981") // emerald
	colDanger    = lipgloss.Color("#EF4444") // red
	colMuted     = lipgloss.Color("#6B7280") // gray
	colHighlight = lipgloss.Color("#F3F4F6") // near-white
	colBorder    = lipgloss.Color("#374151") // dark gray
	colAccent    = lipgloss.Color("#14B8A6") // teal
	colSubtle    = lipgloss.Color("#1E1B4B") // indigo-dark (active item bg)
)

// ─────────────────────────────────────────────────────────────────────────────
// Typography
// ─────────────────────────────────────────────────────────────────────────────

var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimaryLt)

	StyleSuccess = lipgloss.NewStyle().Foreground(colSuccess).Bold(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(colMuted)
	StyleAccent  = lipgloss.NewStyle().Foreground(colAccent).Bold(true)
	StyleNormal  = lipgloss.NewStyle().Foreground(colHighlight)
)

// ─────────────────────────────────────────────────────────────────────────────
// Layout
// ─────────────────────────────────────────────────────────────────────────────

var (
	StylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(0, 1)

	StyleActivePanel = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colPrimary).
				Padding(0, 1)

	StyleStatusBar = lipgloss.NewStyle().
			Foreground(colMuted).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Background(colSubtle).
			Foreground(colHighlight).
			Bold(true).
			Padding(0, 2)

	StyleSidebar = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colBorder).
			Padding(1, 1)
)

// ─────────────────────────────────────────────────────────────────────────────
// Sidebar items
// ─────────────────────────────────────────────────────────────────────────────

var (
	StyleNavItem = lipgloss.NewStyle().
			Foreground(colMuted).
			Padding(0, 1)

	StyleNavActive = lipgloss.NewStyle().
			Background(colSubtle).
			Foreground(colHighlight).
			Bold(true).
			Padding(0, 1)
)

// ─────────────────────────────────────────────────────────────────────────────
// Badges
// ─────────────────────────────────────────────────────────────────────────────

// BadgeNotifications renders the header bell; zero unread shows muted.
func BadgeNotifications(n int) string {
	if n == 0 {
		return StyleMuted.Render("🔔")
	}
	return lipgloss.NewStyle().
		Background(colDanger).Foreground(colHighlight).Bold(true).Padding(0, 1).
		Render("🔔 " + strconv.Itoa(n))
}

// ─────────────────────────────────────────────────────────────────────────────
// Section header helper
// ─────────────────────────────────────────────────────────────────────────────

func SectionTitle(label string) string {
	left := StyleMuted.Render("── ")
	title := lipgloss.NewStyle().Foreground(colPrimaryLt).Bold(true).Render(label)
	right := StyleMuted.Render(" ────────────────────")
	return left + title + right
}
