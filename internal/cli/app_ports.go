package cli

import (
	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/alexanderramin/uniprompt/internal/session"
)

func (a *App) clipboard() session.Clipboard {
	if a.Clipboard != nil {
		return a.Clipboard
	}
	return session.SystemClipboard{}
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) newSession(opts composer.Options) *session.Session {
	return session.New(composer.New(opts))
}
