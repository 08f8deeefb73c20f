package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/envread/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
}

// PrintResult outputs a check result with colored status to stdout.
func PrintResult(r check.Result) {
	FprintResult(os.Stdout, r)
}

// FprintResult outputs a check result with colored status to w.
func FprintResult(w io.Writer, r check.Result) {
	if r.OK() {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
		for _, d := range r.Details {
			fmt.Fprintf(w, "     %s\n", d)
		}
		return
	}

	fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
	for _, d := range r.Details {
		fmt.Fprintf(w, "       %s\n", d)
	}
}
