package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sitecms/internal/contentstore"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Write content documents from a YAML file",
	Long: `Reads a YAML document whose top level "documents" mapping associates
content keys with values and writes each one to the content store.

Example:
  documents:
    hero:
      title: Built for growth
    page-careers:
      title: Careers
      sections: [hero, imageGrid]`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

type seedFile struct {
	Documents map[string]any `yaml:"documents"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	module, err := openModule(ctx)
	if err != nil {
		return err
	}
	defer module.Close()

	n, err := seedDocuments(ctx, module.Content(), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d documents\n", n)
	return nil
}

// seedDocuments writes every document in r in key order. Validation failures
// stop the run; documents already written stay.
func seedDocuments(ctx context.Context, store contentstore.Service, r io.Reader) (int, error) {
	var file seedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	keys := make([]string, 0, len(file.Documents))
	for key := range file.Documents {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		if _, err := store.PutValue(ctx, key, file.Documents[key]); err != nil {
			return i, fmt.Errorf("seed %s: %w", key, err)
		}
	}
	return len(keys), nil
}
