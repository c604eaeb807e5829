package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octobranch/pkg/domain/model"
)

// Separator is printed after owner header and after each repository
var Separator = strings.Repeat("-", 35)

// Printer renders branch report as line oriented text. The first write error is kept and later writes are skipped; check it with Err.
type Printer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (x *Printer) Err() error {
	return x.err
}

func (x *Printer) println(a ...any) {
	if x.err != nil {
		return
	}
	if _, err := fmt.Fprintln(x.w, a...); err != nil {
		x.err = goerr.Wrap(err, "failed to write report")
	}
}

func (x *Printer) printf(format string, a ...any) {
	x.println(fmt.Sprintf(format, a...))
}

func (x *Printer) Owner(login string) {
	x.println("Owner: " + login)
	x.Separator()
}

func (x *Printer) Separator() {
	x.println(Separator)
}

// Repository prints header of n-th (1-based) non-fork repository
func (x *Printer) Repository(n int, name string) {
	x.printf("Repository #%d: %s", n, name)
}

func (x *Printer) Branch(branch *model.Branch) {
	x.printf("  - Branch: %s, SHA: %s", branch.Name, branch.CommitSHA)
}

func (x *Printer) BranchFailure(status int) {
	x.printf("  Failed to fetch branches. Status: %d", status)
}

func (x *Printer) NoRepositories(account string) {
	x.println("No repositories found for user: " + account)
}

// Error prints classified failure as indented JSON. HTML characters in message are kept as is.
func (x *Printer) Error(report *model.ErrorReport) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		if x.err == nil {
			x.err = goerr.Wrap(err, "failed to encode error report", goerr.V("report", report))
		}
		return
	}
	x.println(strings.TrimSuffix(buf.String(), "\n"))
}
