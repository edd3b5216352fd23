package ports

// Prompter asks the user yes/no questions
type Prompter interface {
	// Confirm returns the user's answer; defaultYes selects the answer for empty input
	Confirm(question string, defaultYes bool) (bool, error)
}

// Reporter prints progress of multi-step operations to the user
type Reporter interface {
	CheckFinished(label string, passed bool)
	CheckStarted(label string)
	Info(msg string)
	Note(msg string)
	Success(msg string)
}
