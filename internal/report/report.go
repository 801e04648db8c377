// Package report renders route search outcomes as the plain-text results
// file and writes it to disk.
//
// One block per request:
//
//	# Source - Destination
//	A->B->C, 40
//	A->C, 70
//
// or one of the lines "X out of the network", "X and Y out of the network",
// "X and Y do not communicate". The report has no trailing newline.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pathfinder/search"
)

// bom is the UTF-8 byte order mark some consumers of the results file expect.
const bom = "\uFEFF"

// Option configures WriteFile.
type Option func(*writeOptions)

type writeOptions struct {
	bom  bool
	perm os.FileMode
}

// WithBOM prefixes the file with a UTF-8 byte order mark.
func WithBOM() Option {
	return func(o *writeOptions) { o.bom = true }
}

// WithPerm sets the file mode of the written report (default 0644).
func WithPerm(perm os.FileMode) Option {
	return func(o *writeOptions) { o.perm = perm }
}

// Render writes the report for outcomes to w.
func Render(w io.Writer, outcomes []search.Outcome) error {
	var sb strings.Builder
	for _, o := range outcomes {
		renderBlock(&sb, o)
	}
	text := strings.TrimRight(sb.String(), " \t\r\n")
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}

	return nil
}

// WriteFile renders outcomes into dir/name, creating dir if needed.
// It returns the path written.
func WriteFile(dir, name string, outcomes []search.Outcome, opts ...Option) (string, error) {
	o := writeOptions{perm: 0o644}
	for _, fn := range opts {
		fn(&o)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if o.bom {
		buf.WriteString(bom)
	}
	if err := Render(&buf, outcomes); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), o.perm); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}

	return path, nil
}

func renderBlock(sb *strings.Builder, o search.Outcome) {
	src, dst := o.Query.Source, o.Query.Destination
	fmt.Fprintf(sb, "# %s - %s\n", src, dst)

	switch o.Status {
	case search.SourceOutOfNetwork:
		fmt.Fprintf(sb, "%s out of the network\n", src)
	case search.DestinationOutOfNetwork:
		fmt.Fprintf(sb, "%s out of the network\n", dst)
	case search.BothOutOfNetwork:
		fmt.Fprintf(sb, "%s and %s out of the network\n", src, dst)
	case search.NoCommunication:
		fmt.Fprintf(sb, "%s and %s do not communicate\n", src, dst)
	default:
		for _, p := range o.Paths {
			sb.WriteString(p.String())
			sb.WriteByte('\n')
		}
	}
}
