package bubbles

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Exit asks the driving window to close after the current update.
func (cmd *Commands) Exit() {
	cmd.app.exit = true
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
