package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"bookstore/internal/entity"
	"bookstore/internal/scenario"

	jsoniter "github.com/json-iterator/go"
)

const (
	formatJSON = "json"
	formatText = "text"
)

var validFormats = []string{formatJSON, formatText}

func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeBooks(w io.Writer, format string, books []*entity.Book) error {
	if format == formatJSON {
		return writeJSON(w, books)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tAUTHOR\tGENRE\tPRICE\tREVIEWS")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", b.Title, b.Author, b.Genre, b.Price.StringFixed(2), len(b.Reviews))
	}
	return tw.Flush()
}

func writeReport(w io.Writer, format string, report scenario.Report) error {
	if format == formatJSON {
		return writeJSON(w, report)
	}

	fmt.Fprintf(w, "scenario %q run %s\n", report.Name, report.RunID)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tOP\tOK\tDETAIL")
	for _, s := range report.Steps {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%s\n", s.Index, s.Op, s.OK, stepDetail(s))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d steps, %d failed\n", len(report.Steps), report.Failures)
	return err
}

func stepDetail(s scenario.StepResult) string {
	switch {
	case s.Mismatch != "":
		return "FAIL: " + s.Mismatch
	case s.Op == scenario.OpSearch:
		return fmt.Sprintf("%d books", len(s.Books))
	case s.Op == scenario.OpReviews:
		return strings.Join(s.Reviews, " | ")
	case s.User != nil:
		return "user " + s.User.Username
	}
	return ""
}
