package cafes

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/cafelike/domain"
	"github.com/CrestNiraj12/cafelike/tui/common"
)

// View renders the list of like controls.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Padding(1, 0, 0, 1).Render("☕ cafelike")
	tagline := common.TaglineStyle.Render("<like cafes without leaving the terminal>")
	b.WriteString(title + tagline + "\n\n")

	if len(m.rows) == 0 {
		b.WriteString("  No cafes yet. Press a to add one.\n")
	}

	// Reserved height: header (~3), input (~2), help (~2), status (~2).
	visible := len(m.rows)
	if m.height > 0 {
		visible = max(1, (m.height-9)/3)
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(len(m.rows), start+visible)

	for i := start; i < end; i++ {
		style := common.UnselectedStyle
		if i == m.cursor {
			style = common.SelectedStyle
		}
		b.WriteString(style.Render(m.renderRow(m.rows[i])) + "\n")
	}

	if m.adding {
		b.WriteString("\n  Add cafe: " + m.input.View() + "\n")
		if m.inputErr != "" {
			b.WriteString("  " + common.ErrorStyle.Render(m.inputErr) + "\n")
		}
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) renderRow(r Row) string {
	cafe := common.CafeStyle.Render(fmt.Sprintf("Cafe #%s", r.ID))
	return cafe + "  " + m.renderControl(r) + m.renderRowError(r)
}

// renderControl draws the like button: a filled heart when liked, an empty
// heart with " Like" when not, and a spinner while a toggle is in flight.
func (m Model) renderControl(r Row) string {
	if r.Pending {
		return common.PendingStyle.Render(m.spinner.View() + " working")
	}
	switch r.State {
	case domain.LikeLiked:
		return common.LikedStyle.Render(r.State.Icon() + r.State.Label())
	case domain.LikeNotLiked:
		return common.NotLikedStyle.Render(r.State.Icon() + r.State.Label())
	default:
		return common.PendingStyle.Render(r.State.Icon())
	}
}

func (m Model) renderRowError(r Row) string {
	if r.Err == nil {
		return ""
	}
	return "  " + common.ErrorStyle.Render("!")
}
