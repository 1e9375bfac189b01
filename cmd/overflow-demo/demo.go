package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fixwidth/fixnum"
	"github.com/katalvlaran/fixwidth/sparse"
)

var (
	headStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4444"))
)

// runDemo is the single RunE of the root command: parse configuration,
// ingest triplets, build at the declared width, compare against the exact
// reference, and render the report.
func runDemo(cmd *cobra.Command, _ []string) error {
	width, err := fixnum.ParseWidth(widthFlag)
	if err != nil {
		return err
	}
	policy, err := fixnum.ParsePolicy(policyFlag)
	if err != nil {
		return err
	}
	if verbose {
		l, lerr := zap.NewDevelopment()
		if lerr != nil {
			return fmt.Errorf("verbose logger: %w", lerr)
		}
		sparse.SetLogger(l)
		defer func() { _ = l.Sync() }()
	}

	ts, err := readTriplets(cmd.InOrStdin())
	if err != nil {
		return err
	}

	rows, cols := shapeFor(ts, rowsFlag, colsFlag)

	// The matrix as the declared width sees it.
	built, err := sparse.FromTriplets(rows, cols, ts,
		sparse.WithWidth(width), sparse.WithPolicy(policy))
	if err != nil {
		return err
	}
	// The same construction in unbounded integers: the true values for
	// comparison, exact even when the declared width is 64.
	ref, err := sparse.ExactFromTriplets(rows, cols, ts)
	if err != nil {
		return err
	}

	if scaleFlag != 1 {
		if built, err = sparse.Scale(built, scaleFlag, sparse.WithPolicy(policy)); err != nil {
			return err
		}
		ref = ref.Scale(scaleFlag)
	}

	report, err := sparse.Audit(built, ref)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headStyle.Render(
		fmt.Sprintf("matrix %dx%d · width %s · policy %s", rows, cols, width, policy)))
	fmt.Fprint(out, built.ToDense())

	if len(report) == 0 {
		fmt.Fprintln(out, okStyle.Render("no overflow: every stored value equals the true value"))

		return nil
	}

	fmt.Fprintln(out, warnStyle.Render(
		fmt.Sprintf("overflow wrapped %d cell(s):", len(report))))
	for _, d := range report {
		fmt.Fprintf(out, "  (%d,%d): stored %d, true %d\n", d.Row, d.Col, d.Stored, d.True)
	}

	return nil
}

// readTriplets ingests "row,col,value" records from r, skipping blank
// lines and '#' comments. Parse failures surface unmodified (with the
// line number) so the caller exits with the malformed-input code.
func readTriplets(r io.Reader) ([]sparse.Triplet, error) {
	var ts []sparse.Triplet
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := sc.Text()
		if isSkippable(s) {
			continue
		}
		t, err := sparse.ParseTriplet(s)
		if err != nil {
			return nil, fmt.Errorf("stdin line %d: %w", line, err)
		}
		ts = append(ts, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return ts, nil
}

// isSkippable reports whether a line is blank or a '#' comment.
func isSkippable(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t':
			continue
		case '#':
			return true
		default:
			return false
		}
	}

	return true
}

// shapeFor resolves the declared shape: explicit flags win, otherwise the
// smallest shape covering every coordinate (minimum 1x1 so empty input
// still builds a valid matrix).
func shapeFor(ts []sparse.Triplet, rows, cols int) (int, int) {
	if rows <= 0 {
		rows = 1
		for _, t := range ts {
			if t.Row+1 > rows {
				rows = t.Row + 1
			}
		}
	}
	if cols <= 0 {
		cols = 1
		for _, t := range ts {
			if t.Col+1 > cols {
				cols = t.Col + 1
			}
		}
	}

	return rows, cols
}
