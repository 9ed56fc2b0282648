package tui

type welcomeModel struct {
	items  []string
	idx    int
	notice string
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register"}}
}

func (m welcomeModel) View() string {
	out := ""
	if m.notice != "" {
		out += errorStyle.Render(m.notice) + "\n\n"
	}
	out += "Choose an action:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	return renderPage("VAULT SYNC", out, "↑/↓: move │ enter: select │ v: about │ q: quit")
}
