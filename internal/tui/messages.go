package tui

// ledgerChangedMsg reports a successful mutation.
type ledgerChangedMsg struct {
	status string
}

// addFailedMsg reports a rejected add; the form stays open.
type addFailedMsg struct {
	err error
}

// errorMsg reports a failed operation outside the form.
type errorMsg struct {
	err     error
	context string
}
