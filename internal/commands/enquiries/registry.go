package enquiriescmd

import (
	"errors"

	"github.com/goliatone/go-sitecms/internal/commands"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// RegisterEnquiryCommands builds the export handler and registers it with
// reg when it is non-nil.
func RegisterEnquiryCommands(reg CommandRegistry, exporter Exporter, provider interfaces.LoggerProvider) (*ExportEnquiriesHandler, error) {
	if exporter == nil {
		return nil, errors.New("enquiry command registration: exporter is nil")
	}
	handler := NewExportEnquiriesHandler(exporter, commands.CommandLogger(provider, "enquiries"))
	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
