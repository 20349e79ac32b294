package pagescmd

import (
	"errors"

	"github.com/goliatone/go-sitecms/internal/commands"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the page handlers produced by RegisterPageCommands.
type HandlerSet struct {
	Create *CreatePageHandler
	Save   *SavePageHandler
	Remove *RemovePageHandler
}

// RegisterPageCommands builds the page handlers and registers them with reg
// when it is non-nil.
func RegisterPageCommands(reg CommandRegistry, service PageService, provider interfaces.LoggerProvider, onCreated func(pages.Entry)) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("page command registration: service is nil")
	}
	logger := commands.CommandLogger(provider, "pages")

	set := &HandlerSet{
		Create: NewCreatePageHandler(service, logger, onCreated),
		Save:   NewSavePageHandler(service, logger),
		Remove: NewRemovePageHandler(service, logger),
	}
	if reg != nil {
		for _, handler := range []any{set.Create, set.Save, set.Remove} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}
