package tui

// confirmAction is what happens when the user answers "y".
type confirmAction int

const (
	confirmDelete confirmAction = iota
	confirmRefresh
	confirmLogout
	confirmQuit
)

type confirmModel struct {
	message string
	action  confirmAction

	// recordID is the record to delete for confirmDelete.
	recordID string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
