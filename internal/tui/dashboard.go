package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kemilad/campusdash/internal/content"
	"github.com/kemilad/campusdash/internal/nav"
)

const sidebarWidth = 22

func (m *Model) View() string {
	header := m.renderHeader()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderContent())
	footer := StyleStatusBar.Render(m.help.View(m.keys))
	if m.last != nil && m.last.From != m.last.To {
		footer = StyleStatusBar.Render(fmt.Sprintf("%s → %s", m.last.From.Label(), m.last.To.Label())) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

// ─────────────────────────────────────────────────────────────────────────────
// Header
// ─────────────────────────────────────────────────────────────────────────────

func (m *Model) renderHeader() string {
	title := "🎓 campusdash"
	right := m.search.View() + "  " + BadgeNotifications(m.data.Header.Notifications) +
		"  " + m.data.Student.Name
	gap := max(2, m.width-lipgloss.Width(title)-lipgloss.Width(right)-4)
	return StyleHeader.Width(m.width).Render(title + strings.Repeat(" ", gap) + right)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sidebar
// ─────────────────────────────────────────────────────────────────────────────

func (m *Model) renderSidebar() string {
	active := m.selector.Active()
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Menu") + "\n\n")
	for i, d := range nav.Destinations() {
		label := fmt.Sprintf("%s  %s", d.Icon(), d.Label())
		style := StyleNavItem
		if d == active {
			style = StyleNavActive
		}
		b.WriteString(style.Width(sidebarWidth-4).Render(label))
		b.WriteString(StyleMuted.Render(fmt.Sprintf(" %d", i+1)) + "\n")
	}
	return StyleSidebar.Render(b.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Content
// ─────────────────────────────────────────────────────────────────────────────

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 80
	}
	return max(40, m.width-sidebarWidth-4)
}

func (m *Model) renderContent() string {
	var body string
	switch m.selector.Active() {
	case nav.Courses:
		body = m.renderCourses()
	case nav.Calendar:
		body = m.renderCalendar()
	case nav.Profile:
		body = m.renderProfile()
	default:
		body = m.renderHome()
	}
	return lipgloss.NewStyle().PaddingLeft(2).Width(m.contentWidth()).Render(body)
}

func (m *Model) renderHome() string {
	var b strings.Builder
	first, _, _ := strings.Cut(m.data.Student.Name, " ")
	b.WriteString(StyleTitle.Render("Welcome back, "+first) + "\n")
	b.WriteString(StyleMuted.Render(m.data.Student.Program+" · "+m.data.Student.Term) + "\n\n")

	b.WriteString(SectionTitle("Current course") + "\n")
	b.WriteString(m.renderCourseCard(m.data.Current) + "\n\n")

	b.WriteString(SectionTitle("Quick actions") + "\n")
	cards := make([]string, len(m.data.QuickActions))
	for i, a := range m.data.QuickActions {
		cards[i] = renderActionCard(a, i == m.card)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	return b.String()
}

func (m *Model) renderCourseCard(c content.CourseSummary) string {
	return StyleActivePanel.Render(
		StyleAccent.Render(c.Code) + "  " + StyleNormal.Bold(true).Render(c.Title) + "\n" +
			StyleMuted.Render(c.Instructor) + "\n\n" +
			StyleNormal.Render(fmt.Sprintf("%d enrolled students", c.Enrolled)) + "\n" +
			m.progress.ViewAs(float64(c.Progress)/100) + " " +
			StyleSuccess.Render(fmt.Sprintf("%d%% progress", c.Progress)) + "\n" +
			StyleMuted.Render("Next: "+c.NextSession),
	)
}

func renderActionCard(a content.QuickAction, focused bool) string {
	style := StylePanel
	if focused {
		style = StyleActivePanel
	}
	return style.Width(24).Render(
		StyleNormal.Bold(true).Render(a.Title) + "\n" +
			StyleMuted.Render(a.Detail) + "\n" +
			StyleAccent.Render("→ "+a.Target.Label()),
	)
}

func (m *Model) renderCourses() string {
	var b strings.Builder
	b.WriteString(SectionTitle(fmt.Sprintf("Courses (%d)", len(m.data.Courses))) + "\n\n")
	for _, c := range m.data.Courses {
		b.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
			StyleAccent.Render(fmt.Sprintf("%-9s", c.Code)),
			StyleNormal.Render(fmt.Sprintf("%-18s", c.Title)),
			StyleMuted.Render(fmt.Sprintf("%-18s", c.Instructor)),
			StyleSuccess.Render(fmt.Sprintf("%3d%%", c.Progress)),
		))
	}
	return b.String()
}

func (m *Model) renderCalendar() string {
	var b strings.Builder
	b.WriteString(SectionTitle("This week") + "\n\n")
	for _, e := range m.data.Events {
		b.WriteString("  " + StyleAccent.Render(e.Day) + "  " +
			StyleMuted.Render(e.Time) + "  " + StyleNormal.Render(e.Title) + "\n")
	}
	return b.String()
}

func (m *Model) renderProfile() string {
	s := m.data.Student
	return SectionTitle("Profile") + "\n" + StylePanel.Render(
		StyleAccent.Render("name     ")+StyleNormal.Render(s.Name)+"\n"+
			StyleAccent.Render("program  ")+StyleNormal.Render(s.Program)+"\n"+
			StyleAccent.Render("term     ")+StyleNormal.Render(s.Term)+"\n"+
			StyleAccent.Render("email    ")+StyleNormal.Render(s.Email),
	)
}
