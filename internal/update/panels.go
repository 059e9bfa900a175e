package update

import (
	"strings"

	"github.com/sandeepkv93/mytodo/internal/query"
	"github.com/sandeepkv93/mytodo/internal/views"
)

const maxNotifications = 40

func (m Model) renderLeftPane(theme views.Theme) string {
	tabs := make([]string, 0, len(query.Tabs))
	for _, tab := range query.Tabs {
		tabs = append(tabs, string(tab))
	}
	rows := make([]views.TaskRowData, 0, len(m.Visible.Items))
	for i, t := range m.Visible.Items {
		rows = append(rows, views.TaskRowData{
			Name:        t.Name,
			Description: t.Description,
			Stamp:       t.Stamp.String(),
			Completed:   t.Completed,
			Edited:      t.Edited,
			Selected:    m.Focus == FocusList && i == m.Cursor,
		})
	}
	return strings.Join([]string{
		views.RenderForm(theme, views.FormData{
			NameView:        m.nameInput.View(),
			DescriptionView: m.descInput.View(),
			Editing:         m.EditingID != "",
		}),
		"",
		m.searchInput.View(),
		views.RenderTabs(theme, tabs, string(m.Query.Tab)),
		views.RenderTaskList(theme, rows),
		views.RenderPager(theme, m.Query.Page, m.Visible.TotalPages),
	}, "\n")
}

func (m Model) renderRightPane(theme views.Theme) string {
	parts := []string{m.renderDetail(theme)}
	if p := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()); p != "" {
		parts = append(parts, p)
	}
	if h := m.renderHelpIfVisible(); h != "" {
		parts = append(parts, h)
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderDetail(theme views.Theme) string {
	t, ok := m.selected()
	if !ok {
		return views.RenderTaskDetail(theme, views.TaskDetailData{})
	}
	vp := m.detailViewport
	vp.SetContent(views.RenderMarkdown(t.Description, m.DarkMode))
	return views.RenderTaskDetail(theme, views.TaskDetailData{
		Name:        t.Name,
		Stamp:       t.Stamp.String(),
		Completed:   t.Completed,
		Edited:      t.Edited,
		Description: vp.View(),
	})
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	})
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
}
