package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"honnef.co/go/spacecurve/internal/scene"
	"honnef.co/go/spacecurve/render"
	"honnef.co/go/spacecurve/render/raster"
)

type renderFlags struct {
	output    string
	frameSize float32
	width     int
	height    int
	view      string
	watch     bool
}

func newRenderCmd(opts *options) *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render all curves to a PNG image",
		Long: `Render all curves to a PNG image.

Curves are drawn as white lines on a black background, projected
orthographically onto the plane chosen by --view and scaled to fit the image.
Unless --frame-size is zero, the frame of every sample is drawn too, with the
normal in red, the binormal in green and the tangent in blue. A negative
frame size draws only the frames.

With --watch, the image is rendered again whenever the scene file changes,
until the command is interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, flags, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "", "write the image to this file, or - for standard output")
	f.Float32Var(&flags.frameSize, "frame-size", 0.1, "length of the frame axes, in scene units")
	f.IntVar(&flags.width, "width", 800, "image width in pixels")
	f.IntVar(&flags.height, "height", 600, "image height in pixels")
	f.StringVar(&flags.view, "view", raster.ViewXY.String(), "projection plane: xy, xz or yz")
	f.BoolVarP(&flags.watch, "watch", "w", false, "render again whenever the scene file changes")
	cobra.CheckErr(cmd.MarkFlagRequired("output"))
	return cmd
}

func runRender(cmd *cobra.Command, opts *options, flags renderFlags, path string) error {
	if flags.width <= 0 || flags.height <= 0 {
		return fmt.Errorf("invalid image size %d×%d", flags.width, flags.height)
	}
	view, err := raster.ParseView(flags.view)
	if err != nil {
		return err
	}
	if flags.watch && flags.output == "-" {
		return errors.New("--watch needs an output file")
	}
	path, err = homedir.Expand(path)
	if err != nil {
		return err
	}
	if flags.output != "-" {
		if flags.output, err = homedir.Expand(flags.output); err != nil {
			return err
		}
	}

	r := &renderer{flags: flags, view: view, stdout: cmd.OutOrStdout(), opts: opts}
	if !flags.watch {
		return r.render(path)
	}

	// Start watching before the first render so that edits made while it
	// runs are not missed.
	w, err := newSceneWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := r.render(path); err != nil {
		opts.logger.Error("render failed", "scene", path, "err", err)
	}
	opts.logger.Info("watching scene", "scene", path)
	return w.run(cmd.Context(), opts.logger, func() error { return r.render(path) })
}

type renderer struct {
	flags  renderFlags
	view   raster.View
	stdout io.Writer
	opts   *options
}

func (r *renderer) render(path string) (err error) {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	results, err := s.Evaluate(r.opts.logger)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, r.flags.width, r.flags.height))
	canvas := raster.New(img, r.view.Matrix(), scene.Bounds(results))
	canvas.Fill(color.Black)
	for _, res := range results {
		render.Draw(canvas, res.Curve, r.flags.frameSize)
	}

	w := r.stdout
	if r.flags.output != "-" {
		f, cerr := os.Create(r.flags.output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}
	cw := &countingWriter{w: w}
	if err := canvas.WritePNG(cw); err != nil {
		return err
	}
	r.opts.logger.Info("rendered scene",
		"scene", path,
		"output", r.flags.output,
		"curves", len(results),
		"view", r.view,
		"size", humanize.Bytes(uint64(cw.n)))
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}
