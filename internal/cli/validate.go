package cli

import (
	"fmt"
	"io"
	"os"

	"freightqa/internal/entity"
	"freightqa/internal/shacl"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RecordResult is the outcome for one record of a file.
type RecordResult struct {
	Index      int                      `json:"index"`
	SubjectKey string                   `json:"subjectKey,omitempty"`
	Result     *entity.ValidationResult `json:"result"`
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <kind> <file>",
		Short: "Validate a list of records of one kind",
		Long: `Validate every record of a YAML or JSON file. The file holds either a
list of records or a single record. Use "-" to read standard input.`,
		Example: "  shaclcheck validate shippers shippers.yaml\n  cat routes.json | shaclcheck validate route - -o json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := entity.ParseKind(args[0])
			if err != nil {
				return err
			}
			if kind == entity.KindBatch {
				return fmt.Errorf("%w: use the batch command for batches", entity.ErrUnknownKind)
			}

			data, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}

			results, err := validateRecords(opts.validator, kind, data)
			if err != nil {
				return err
			}

			if err = writeResults(cmd.OutOrStdout(), opts.output, kind, results); err != nil {
				return err
			}

			for _, r := range results {
				if !r.Result.IsValid {
					return ErrInvalidRecords
				}
			}
			return nil
		},
	}
}

func newBatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Validate a batch document with shippers, bookings, predictions and routes lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const op = "cli.batch"

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var req entity.BatchRequest
			if err = yaml.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("%s: %w: %w", op, entity.ErrMalformedRecord, err)
			}

			res := opts.validator.ValidateBatch(&req)
			if err = writeBatch(cmd.OutOrStdout(), opts.output, res); err != nil {
				return err
			}

			if !res.OverallValid {
				return ErrInvalidRecords
			}
			return nil
		},
	}
}

func newSampleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "sample <kind>",
		Short:     "Print a well-formed sample record",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"shipper", "booking", "prediction", "route", "batch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := entity.ParseKind(args[0])
			if err != nil {
				return err
			}

			rec, err := shacl.Sample(kind, opts.now())
			if err != nil {
				return err
			}
			return writeValue(cmd.OutOrStdout(), opts.output, rec)
		},
	}
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	const op = "cli.readInput"

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}

// validateRecords decodes data as a list of records of kind, or as a single
// record when it is not a list. JSON input parses as YAML.
func validateRecords(v *shacl.Validator, kind entity.Kind, data []byte) ([]RecordResult, error) {
	const op = "cli.validateRecords"

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, entity.ErrMalformedRecord, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%s: %w: empty document", op, entity.ErrMalformedRecord)
	}

	nodes := []*yaml.Node{doc.Content[0]}
	if doc.Content[0].Kind == yaml.SequenceNode {
		nodes = doc.Content[0].Content
	}

	results := make([]RecordResult, 0, len(nodes))
	for i, node := range nodes {
		rec := newRecord(kind)
		if err := node.Decode(rec); err != nil {
			return nil, fmt.Errorf("%s: %w: record %d: %w", op, entity.ErrMalformedRecord, i, err)
		}

		res, err := v.Validate(kind, rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		r := RecordResult{Index: i, Result: res}
		if s, ok := rec.(interface{ SubjectKey() string }); ok {
			r.SubjectKey = s.SubjectKey()
		}
		results = append(results, r)
	}
	return results, nil
}

func newRecord(kind entity.Kind) any {
	switch kind {
	case entity.KindShipper:
		return &entity.Shipper{}
	case entity.KindBooking:
		return &entity.Booking{}
	case entity.KindPrediction:
		return &entity.Prediction{}
	default:
		return &entity.Route{}
	}
}
