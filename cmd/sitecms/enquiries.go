package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	enquiriescmd "github.com/goliatone/go-sitecms/internal/commands/enquiries"
)

var exportFlags struct {
	out     string
	name    string
	email   string
	checked string
	from    string
	to      string
}

var exportEnquiriesCmd = &cobra.Command{
	Use:   "export-enquiries",
	Short: "Export enquiries as CSV",
	Long: `Writes enquiries as CSV (Date/Time, Name, Mobile, Email, Message) to
--out or stdout. Dates accept YYYY-MM-DD or RFC 3339.`,
	RunE: runExportEnquiries,
}

func init() {
	flags := exportEnquiriesCmd.Flags()
	flags.StringVarP(&exportFlags.out, "out", "o", "", "output file (defaults to stdout)")
	flags.StringVar(&exportFlags.name, "name", "", "filter by name substring")
	flags.StringVar(&exportFlags.email, "email", "", "filter by email substring")
	flags.StringVar(&exportFlags.checked, "checked", "", "filter by checked state (true|false)")
	flags.StringVar(&exportFlags.from, "from", "", "only enquiries created at or after this time")
	flags.StringVar(&exportFlags.to, "to", "", "only enquiries created at or before this time")
}

func runExportEnquiries(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	msg, err := exportCommand()
	if err != nil {
		return err
	}

	module, err := openModule(ctx)
	if err != nil {
		return err
	}
	defer module.Close()

	handler := module.Container().Commands().ExportEnquiries
	if handler == nil {
		return errors.New("enquiries feature is disabled")
	}

	var out io.Writer = cmd.OutOrStdout()
	if path := strings.TrimSpace(exportFlags.out); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	msg.Output = out
	return handler.Execute(ctx, msg)
}

func exportCommand() (enquiriescmd.ExportEnquiriesCommand, error) {
	msg := enquiriescmd.ExportEnquiriesCommand{
		Name:  strings.TrimSpace(exportFlags.name),
		Email: strings.TrimSpace(exportFlags.email),
	}
	if raw := strings.TrimSpace(exportFlags.checked); raw != "" {
		checked, err := strconv.ParseBool(raw)
		if err != nil {
			return msg, fmt.Errorf("invalid --checked %q", raw)
		}
		msg.Checked = &checked
	}
	var err error
	if msg.From, err = parseFlagTime("from", exportFlags.from); err != nil {
		return msg, err
	}
	if msg.To, err = parseFlagTime("to", exportFlags.to); err != nil {
		return msg, err
	}
	return msg, nil
}

func parseFlagTime(name, value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid --%s %q", name, trimmed)
}
