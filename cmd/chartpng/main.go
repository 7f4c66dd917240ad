package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/roffe/litechart/pkg/chart"
	"github.com/roffe/litechart/pkg/presets"
	"github.com/skratchdot/open-golang/open"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

type options struct {
	width, height int
	scale         float64
	outDir        string
	trace         bool
	open          bool
	clip          bool
	preset        string
	fontPath      string
	fontSize      float64
	font          *opentype.Font
}

func main() {
	var opts options
	flag.IntVar(&opts.width, "w", 400, "container width")
	flag.IntVar(&opts.height, "h", 300, "container height")
	flag.Float64Var(&opts.scale, "scale", 1, "scale the written image by this factor")
	flag.StringVar(&opts.outDir, "out", ".", "output directory")
	flag.BoolVar(&opts.trace, "trace", false, "also write the drawing operations as JSON")
	flag.BoolVar(&opts.open, "open", false, "open the written images")
	flag.BoolVar(&opts.clip, "clip", false, "copy the last image to the clipboard")
	flag.StringVar(&opts.preset, "preset", "", "render a named preset")
	flag.StringVar(&opts.fontPath, "font", "", "TrueType or OpenType font for labels")
	flag.Float64Var(&opts.fontSize, "fontsize", 12, "label font size in points")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if opts.fontPath != "" {
		f, err := loadFont(opts.fontPath)
		if err != nil {
			log.Fatal(err)
		}
		opts.font = f
	}

	jobs, err := collect(opts.preset, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if len(jobs) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		log.Fatal(err)
	}

	written, err := run(context.Background(), jobs, opts)
	for _, path := range written {
		if path != "" {
			log.Printf("wrote %s", path)
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	if opts.open {
		for _, path := range written {
			if err := open.Run(path); err != nil {
				log.Printf("open %s: %v", path, err)
			}
		}
	}
	if opts.clip {
		if err := toClipboard(written[len(written)-1]); err != nil {
			log.Fatal(err)
		}
	}
}

type job struct {
	name string
	cfg  chart.Config
}

// collect gathers the charts named on the command line, sorted by name
// within each file. Names that would share an output file get a _2, _3...
// suffix in the order they were seen.
func collect(preset string, files []string) ([]job, error) {
	jobs, err := gather(preset, files)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(jobs))
	for i := range jobs {
		name := jobs[i].name
		for n := 2; taken[fileName(name)]; n++ {
			name = fmt.Sprintf("%s_%d", jobs[i].name, n)
		}
		taken[fileName(name)] = true
		jobs[i].name = name
	}
	return jobs, nil
}

func gather(preset string, files []string) ([]job, error) {
	var jobs []job
	if preset != "" {
		cfg, err := presets.Get(preset)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{name: preset, cfg: cfg})
	}
	for _, file := range files {
		cfgs, err := presets.LoadFile(file)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(cfgs))
		for name := range cfgs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			jobs = append(jobs, job{name: name, cfg: cfgs[name]})
		}
	}
	return jobs, nil
}

// run renders every job, at most one per CPU at a time. The returned paths
// follow the order of jobs; a job that did not finish leaves an empty path.
func run(ctx context.Context, jobs []job, opts options) ([]string, error) {
	written := make([]string, len(jobs))
	errg, gctx := errgroup.WithContext(ctx)
	errg.SetLimit(runtime.NumCPU())
	for i, j := range jobs {
		i, j := i, j
		errg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := renderJob(j, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			written[i] = path
			return nil
		})
	}
	return written, errg.Wait()
}

func toClipboard(path string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	<-clipboard.Write(clipboard.FmtImage, b)
	return nil
}
