package main

import (
	"errors"
	"flag"

	facetErrors "github.com/odvcencio/facet/pkg/errors"
)

const (
	exitOK      = 0
	exitNoHit   = 1
	exitUsage   = 2
	exitFailure = 3
)

// errNoHit reports a ray that touched nothing. It is an outcome, not a
// failure, and is printed to stdout.
var errNoHit = withExitCode(errors.New("no hit"), exitNoHit)

type exitCoder interface {
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	if e.code == 0 {
		return exitFailure
	}
	return e.code
}

func withExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return exitError{code: code, err: err}
}

// usageError marks err as a problem with the command line.
func usageError(err error) error {
	return withExitCode(facetErrors.Wrap(err, facetErrors.ErrCodeUsage, "invalid arguments"), exitUsage)
}

// exitCodeForError maps err to a process exit code. Flag parse failures,
// invalid configuration and usage errors exit with 2; any other failure
// exits with 3 so that it never reads as a miss.
func exitCodeForError(err error) int {
	if err == nil {
		return exitOK
	}
	var coded exitCoder
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	if errors.Is(err, flag.ErrHelp) {
		return exitUsage
	}
	switch facetErrors.GetCode(err) {
	case facetErrors.ErrCodeUsage, facetErrors.ErrCodeConfigInvalid, facetErrors.ErrCodeConfigParse:
		return exitUsage
	}
	return exitFailure
}
