package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

func runDescribeCommand(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	var vf viewportFlags
	vf.register(fs)
	format := fs.String("format", "", "Export encoding: json or toon (default: config)")
	if err := parseArgs(fs, args); err != nil {
		return err
	}

	s, err := vf.session(false)
	if err != nil {
		return err
	}
	defer s.close()

	f, err := exportFormat(*format, s.cfg)
	if err != nil {
		return err
	}
	data, err := semantic.Export(view.Describe(s.ctx, showcase()), f)
	if err != nil {
		return fmt.Errorf("export description: %w", err)
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}
