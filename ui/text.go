package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/welaika/wordless-cli/entity"
)

// maxKeyPadding caps how far KeyValues pads shorter keys.
const maxKeyPadding = 50

var (
	out     io.Writer = os.Stdout
	verbose bool
)

// SetOutput redirects every status line, mostly for tests. nil restores stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
}

func SetVerbose(v bool) {
	verbose = v
}

func Verbose() bool {
	return verbose
}

func Color(w io.Writer) aurora.Aurora {
	if f, ok := w.(*os.File); ok && f == os.Stdout {
		return aurora.NewAurora(SupportsANSICodes())
	}
	return aurora.NewAurora(false)
}

func Bold(text string) string {
	return Color(out).Bold(text).String()
}

func RedText(text string) string {
	return Color(out).Red(text).String()
}

func GreenText(text string) string {
	return Color(out).Green(text).String()
}

func YellowText(text string) string {
	return Color(out).Yellow(text).String()
}

func GrayText(text string) string {
	return Color(out).Gray(12, text).String()
}

// Report prints the one status line of a command outcome.
func Report(o *entity.Outcome) {
	if o.OK() {
		Success(o.Message)
		return
	}
	Error(o.Message)
}

func Success(msg string) {
	fmt.Fprintf(out, "%s %s\n", GreenText("✔"), msg)
}

func Error(msg string) {
	fmt.Fprintf(out, "%s %s\n", RedText("✘"), RedText(msg))
}

func Info(msg string) {
	fmt.Fprintf(out, "%s %s\n", YellowText("»"), msg)
}

// Trace prints only with --verbose.
func Trace(format string, a ...interface{}) {
	if !verbose {
		return
	}
	fmt.Fprintln(out, GrayText("  $ "+fmt.Sprintf(format, a...)))
}

// Print writes raw text to the current output.
func Print(text string) {
	fmt.Fprint(out, text)
}

// KeyValues renders a map as aligned "key: value" lines in key order.
func KeyValues(items map[string]string) string {
	if len(items) == 0 {
		return ""
	}
	keys := make([]string, 0, len(items))
	width := 0
	for k := range items {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)
	if width > maxKeyPadding {
		width = maxKeyPadding
	}

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-*s %s\n", width+1, k+":", items[k])
	}
	return b.String()
}

func UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

// PrefixLines prefixes every line of text, used to indent captured tool output.
func PrefixLines(text, prefix string) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
