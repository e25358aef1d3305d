package tui

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

// toastExpiredMsg clears the toast it was scheduled for.
type toastExpiredMsg struct {
	seq int
}
