// Package cli implements the shaclcheck command line.
package cli

import (
	"errors"
	"fmt"
	"time"

	"freightqa/internal/shacl"

	"github.com/spf13/cobra"
)

// ErrInvalidRecords is returned when at least one record fails validation.
var ErrInvalidRecords = errors.New("invalid records")

const (
	outputText = "text"
	outputJSON = "json"
)

type options struct {
	lang   string
	output string

	validator *shacl.Validator
	now       func() time.Time
}

// NewRootCmd builds the shaclcheck command tree. now is used for sample
// dates; nil means time.Now.
func NewRootCmd(now func() time.Time) *cobra.Command {
	if now == nil {
		now = time.Now
	}
	opts := &options{now: now}

	root := &cobra.Command{
		Use:   "shaclcheck",
		Short: "Validate freight records against the logistics shapes",
		Long: `shaclcheck validates shipper, booking, prediction and route records
read from YAML or JSON files, without a database or a running service.

The exit status is 1 when any record is invalid.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.complete()
		},
	}

	root.PersistentFlags().StringVar(&opts.lang, "lang", "en", "message language (en, ko)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format (text, json)")

	root.AddCommand(
		newValidateCmd(opts),
		newBatchCmd(opts),
		newSampleCmd(opts),
	)

	return root
}

func (o *options) complete() error {
	const op = "cli.options.complete"

	if o.output != outputText && o.output != outputJSON {
		return fmt.Errorf("%s: unknown output format %q", op, o.output)
	}

	tag, err := shacl.ParseLanguage(o.lang)
	if err != nil {
		return fmt.Errorf("%s: language %q: %w", op, o.lang, err)
	}
	o.validator = shacl.New(shacl.WithLanguage(tag))
	return nil
}
