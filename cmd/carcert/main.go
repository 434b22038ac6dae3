package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/carpartcert/carcert-cli/internal/service"
	"github.com/carpartcert/carcert-cli/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Process exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitNotEnrolled = 3
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run executes the command line and maps its outcome to an exit code. All
// deferred cleanup has completed by the time it returns.
func run(ctx context.Context, args []string) int {
	root := newRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), err)
	}

	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, service.ErrIdentityNotEnrolled):
		return exitNotEnrolled
	default:
		return exitFailure
	}
}

func printBuildInfo(info models.AppBuildInfo, w io.Writer) {
	orNA := func(v string) string {
		if v == "" {
			return "N/A"
		}
		return v
	}

	fmt.Fprintf(w, "Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", orNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(info.BuildCommit()))
}
