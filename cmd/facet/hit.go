package main

import (
	"flag"
	"fmt"
	"io"

	"cogentcore.org/core/math32"
	"go.uber.org/zap"

	"github.com/odvcencio/facet/pkg/ui/backend/spatial"
	"github.com/odvcencio/facet/pkg/ui/view"
)

func runHitCommand(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("hit", flag.ContinueOnError)
	var vf viewportFlags
	vf.register(fs)
	ox := fs.Float64("ox", 0, "Ray origin x")
	oy := fs.Float64("oy", 0, "Ray origin y")
	oz := fs.Float64("oz", 100, "Ray origin z")
	dx := fs.Float64("dx", 0, "Ray direction x")
	dy := fs.Float64("dy", 0, "Ray direction y")
	dz := fs.Float64("dz", -1, "Ray direction z")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	dir := math32.Vec3(float32(*dx), float32(*dy), float32(*dz))
	if dir.Length() == 0 {
		return usageError(fmt.Errorf("ray direction must be non-zero"))
	}

	s, err := vf.session(false)
	if err != nil {
		return err
	}
	defer s.close()

	root := view.Render[*spatial.Node](spatial.Backend{}, s.ctx, showcase())
	ray := spatial.NewRay(math32.Vec3(float32(*ox), float32(*oy), float32(*oz)), dir)
	hit, ok := root.HitTest(ray)
	s.log.Debug("hit test",
		zap.Bool("hit", ok),
		zap.Int("nodes", root.Count()),
	)
	if !ok {
		return errNoHit
	}

	fmt.Fprintf(stdout, "role:     %s\n", hit.Role)
	fmt.Fprintf(stdout, "distance: %s\n", num(hit.Distance))
	fmt.Fprintf(stdout, "point:    %s %s %s\n", num(hit.Point.X), num(hit.Point.Y), num(hit.Point.Z))
	if hit.Message != nil {
		fmt.Fprintf(stdout, "message:  %v\n", hit.Message)
	}
	return nil
}

func num(f float32) string {
	return fmt.Sprintf("%.2f", f)
}
