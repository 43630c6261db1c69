package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"freightqa/internal/entity"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func writeValue(w io.Writer, format string, v any) error {
	const op = "cli.writeValue"

	var (
		data []byte
		err  error
	)
	if format == outputJSON {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = fmt.Fprintf(w, "%s\n", trimmed(data))
	return err
}

func writeResults(w io.Writer, format string, kind entity.Kind, results []RecordResult) error {
	if format == outputJSON {
		return writeValue(w, format, results)
	}

	var sb strings.Builder
	for _, r := range results {
		writeResultText(&sb, kind, r.Index, r.SubjectKey, r.Result)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeBatch(w io.Writer, format string, res *entity.BatchResult) error {
	if format == outputJSON {
		return writeValue(w, format, res)
	}

	var sb strings.Builder
	res.Each(func(kind entity.Kind, index int, result *entity.ValidationResult) {
		writeResultText(&sb, kind, index, "", result)
	})
	if res.OverallValid {
		sb.WriteString("overall: valid\n")
	} else {
		sb.WriteString("overall: invalid\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeResultText(sb *strings.Builder, kind entity.Kind, index int, key string, res *entity.ValidationResult) {
	status := "valid"
	if !res.IsValid {
		status = "invalid"
	}

	fmt.Fprintf(sb, "%s[%d]", kind, index)
	if key != "" {
		fmt.Fprintf(sb, " %s", key)
	}
	fmt.Fprintf(sb, ": %s (checks %d, passed %d, failed %d)\n",
		status, res.Summary.TotalChecks, res.Summary.Passed, res.Summary.Failed)

	for _, v := range res.Violations {
		fmt.Fprintf(sb, "  %-7s %s", v.Severity, v.Shape)
		if v.Property != "" {
			fmt.Fprintf(sb, ".%s", v.Property)
		}
		fmt.Fprintf(sb, ": %s", v.Message)
		if v.Value != nil {
			fmt.Fprintf(sb, " (value: %v)", v.Value)
		}
		sb.WriteByte('\n')
	}
}

func trimmed(b []byte) []byte {
	return bytes.TrimRight(b, "\n")
}
