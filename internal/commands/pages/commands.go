package pagescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitecms/internal/commands"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/internal/sections"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	createPageMessageType = "sitecms.pages.create"
	savePageMessageType   = "sitecms.pages.save"
	removePageMessageType = "sitecms.pages.remove"
)

// PageService is the registry surface the handlers drive.
type PageService interface {
	CreatePage(ctx context.Context, req pages.CreateRequest) (pages.Entry, error)
	SavePage(ctx context.Context, slug string, def sections.PageDefinition) (sections.PageDefinition, error)
	RemovePage(ctx context.Context, slug string) error
}

var (
	_ command.Commander[CreatePageCommand] = (*CreatePageHandler)(nil)
	_ command.Commander[SavePageCommand]   = (*SavePageHandler)(nil)
	_ command.Commander[RemovePageCommand] = (*RemovePageHandler)(nil)
)

// CreatePageCommand registers a new page.
type CreatePageCommand struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Title       string   `json:"title,omitempty"`
	Sections    []string `json:"sections,omitempty"`
	AddToNavbar bool     `json:"addToNavbar,omitempty"`
}

func (CreatePageCommand) Type() string { return createPageMessageType }

func (m CreatePageCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Name) == "" && strings.TrimSpace(m.Slug) == "" {
		errs["name"] = validation.NewError("sitecms.pages.create.name_required", "name or slug is required")
	}
	for _, raw := range m.Sections {
		if _, ok := sections.ParseKind(raw); !ok {
			errs["sections"] = validation.NewError("sitecms.pages.create.section_unknown", "unknown section type "+raw)
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreatePageHandler runs CreatePageCommand against the registry.
type CreatePageHandler struct {
	inner *commands.Handler[CreatePageCommand]
}

// NewCreatePageHandler builds the handler. onCreated, when set, receives the
// registered entry.
func NewCreatePageHandler(service PageService, logger interfaces.Logger, onCreated func(pages.Entry), opts ...commands.HandlerOption[CreatePageCommand]) *CreatePageHandler {
	exec := func(ctx context.Context, msg CreatePageCommand) error {
		list := make(sections.EntryList, 0, len(msg.Sections))
		for _, raw := range msg.Sections {
			kind, _ := sections.ParseKind(raw)
			list = append(list, sections.Bare(kind))
		}
		entry, err := service.CreatePage(ctx, pages.CreateRequest{
			Name:        msg.Name,
			Slug:        msg.Slug,
			Title:       msg.Title,
			Sections:    list,
			AddToNavbar: msg.AddToNavbar,
		})
		if err != nil {
			return err
		}
		if onCreated != nil {
			onCreated(entry)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CreatePageCommand]{
		commands.WithLogger[CreatePageCommand](logger),
		commands.WithOperation[CreatePageCommand]("pages.create"),
	}
	return &CreatePageHandler{
		inner: commands.NewHandler(exec, append(handlerOpts, opts...)...),
	}
}

func (h *CreatePageHandler) Execute(ctx context.Context, msg CreatePageCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SavePageCommand replaces the definition stored for Slug.
type SavePageCommand struct {
	Slug string                  `json:"slug"`
	Page sections.PageDefinition `json:"page"`
}

func (SavePageCommand) Type() string { return savePageMessageType }

func (m SavePageCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Slug, validation.Required),
	)
}

type SavePageHandler struct {
	inner *commands.Handler[SavePageCommand]
}

func NewSavePageHandler(service PageService, logger interfaces.Logger, opts ...commands.HandlerOption[SavePageCommand]) *SavePageHandler {
	exec := func(ctx context.Context, msg SavePageCommand) error {
		_, err := service.SavePage(ctx, msg.Slug, msg.Page)
		return err
	}
	handlerOpts := []commands.HandlerOption[SavePageCommand]{
		commands.WithLogger[SavePageCommand](logger),
		commands.WithOperation[SavePageCommand]("pages.save"),
	}
	return &SavePageHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *SavePageHandler) Execute(ctx context.Context, msg SavePageCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RemovePageCommand drops a page from the registry.
type RemovePageCommand struct {
	Slug string `json:"slug"`
}

func (RemovePageCommand) Type() string { return removePageMessageType }

func (m RemovePageCommand) Validate() error {
	errs := validation.Errors{}
	slug := strings.TrimSpace(m.Slug)
	if slug == "" {
		errs["slug"] = validation.NewError("sitecms.pages.remove.slug_required", "slug is required")
	} else if pages.IsBuiltin(slug) {
		errs["slug"] = validation.NewError("sitecms.pages.remove.builtin", "built-in pages cannot be removed")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RemovePageHandler struct {
	inner *commands.Handler[RemovePageCommand]
}

func NewRemovePageHandler(service PageService, logger interfaces.Logger, opts ...commands.HandlerOption[RemovePageCommand]) *RemovePageHandler {
	exec := func(ctx context.Context, msg RemovePageCommand) error {
		return service.RemovePage(ctx, strings.TrimSpace(msg.Slug))
	}
	handlerOpts := []commands.HandlerOption[RemovePageCommand]{
		commands.WithLogger[RemovePageCommand](logger),
		commands.WithOperation[RemovePageCommand]("pages.remove"),
	}
	return &RemovePageHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *RemovePageHandler) Execute(ctx context.Context, msg RemovePageCommand) error {
	return h.inner.Execute(ctx, msg)
}
