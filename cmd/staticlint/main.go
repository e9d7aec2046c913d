// Staticlint runs the analyzers the page server is checked with.
//
// Usage:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"github.com/kisielk/errcheck/errcheck"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"github.com/ultraware/whitespace"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck/st1005"
	"honnef.co/go/tools/stylecheck/st1012"
)

func main() {
	whitespaceAnalyzer := whitespace.NewAnalyzer(nil)

	mychecks := make([]*analysis.Analyzer, 0, len(staticcheck.Analyzers)+9)

	mychecks = append(mychecks, []*analysis.Analyzer{
		printf.Analyzer,    // check consistency of Printf format strings and arguments
		shadow.Analyzer,    // check for possible unintended shadowing of variables
		structtag.Analyzer, // checks struct field tags are well formed, env and mapstructure tags included

		st1005.Analyzer, // incorrectly formatted error string
		st1012.Analyzer, // poorly chosen name for error variable

		errcheck.Analyzer,  // check for unchecked errors
		whitespaceAnalyzer, // unnecessary newlines at the start and end of functions, if, for, etc
		bodyclose.Analyzer, // shortener API response bodies must be closed

		OSExitCheckAnalyzer, // check os.Exit() in main()
	}...)

	for _, v := range staticcheck.Analyzers {
		mychecks = append(mychecks, v.Analyzer)
	}

	multichecker.Main(
		mychecks...,
	)
}
