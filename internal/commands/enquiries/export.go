package enquiriescmd

import (
	"context"
	"errors"
	"io"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitecms/internal/commands"
	"github.com/goliatone/go-sitecms/internal/enquiries"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const exportMessageType = "sitecms.enquiries.export"

// Exporter writes enquiries as CSV.
type Exporter interface {
	ExportCSV(ctx context.Context, w io.Writer, filter enquiries.Filter) (int, error)
}

var _ command.Commander[ExportEnquiriesCommand] = (*ExportEnquiriesHandler)(nil)

// ExportEnquiriesCommand streams a CSV export into Output.
type ExportEnquiriesCommand struct {
	Output  io.Writer  `json:"-"`
	Name    string     `json:"name,omitempty"`
	Email   string     `json:"email,omitempty"`
	Checked *bool      `json:"checked,omitempty"`
	From    *time.Time `json:"from,omitempty"`
	To      *time.Time `json:"to,omitempty"`
}

func (ExportEnquiriesCommand) Type() string { return exportMessageType }

func (m ExportEnquiriesCommand) Validate() error {
	errs := validation.Errors{}
	if m.Output == nil {
		errs["output"] = validation.NewError("sitecms.enquiries.export.output_required", "output writer is required")
	}
	if m.From != nil && m.To != nil && m.To.Before(*m.From) {
		errs["to"] = validation.NewError("sitecms.enquiries.export.range_invalid", "to must not be before from")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (m ExportEnquiriesCommand) filter() enquiries.Filter {
	return enquiries.Filter{Name: m.Name, Email: m.Email, Checked: m.Checked, From: m.From, To: m.To}
}

// ExportEnquiriesHandler runs the export through the enquiries service.
type ExportEnquiriesHandler struct {
	inner *commands.Handler[ExportEnquiriesCommand]
}

func NewExportEnquiriesHandler(exporter Exporter, logger interfaces.Logger, opts ...commands.HandlerOption[ExportEnquiriesCommand]) *ExportEnquiriesHandler {
	if exporter == nil {
		panic(errors.New("enquiriescmd: exporter is required"))
	}
	exec := func(ctx context.Context, msg ExportEnquiriesCommand) error {
		_, err := exporter.ExportCSV(ctx, msg.Output, msg.filter())
		return err
	}
	handlerOpts := []commands.HandlerOption[ExportEnquiriesCommand]{
		commands.WithLogger[ExportEnquiriesCommand](logger),
		commands.WithOperation[ExportEnquiriesCommand]("enquiries.export"),
	}
	return &ExportEnquiriesHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *ExportEnquiriesHandler) Execute(ctx context.Context, msg ExportEnquiriesCommand) error {
	return h.inner.Execute(ctx, msg)
}
