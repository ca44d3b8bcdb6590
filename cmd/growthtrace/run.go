package main

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/pavanmanishd/dynarray/internal/scenario"
	"github.com/spf13/cobra"
)

type runOptions struct {
	config   string
	all      bool
	plot     bool
	width    int
	scenario scenario.Scenario
}

func newRunCmd() *cobra.Command {
	o := &runOptions{scenario: scenario.Default()}
	o.scenario.Name = "flags"

	cmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Replay a growth scenario",
		Long: `The run command replays one append workload and prints every capacity
change followed by a plot of capacity per append.

Without --config the workload comes from the flags. With --config the named
scenario (or every scenario with --all) is loaded from the YAML file.

Example:
  growthtrace run --initial 5 --appends 5
  growthtrace run --appends 1000 --allocator arena
  growthtrace run --config scenarios.yaml mmap-shrink
  growthtrace run --config scenarios.yaml --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd.OutOrStdout(), o, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "Scenario file (yaml)")
	f.BoolVar(&o.all, "all", false, "Run every scenario in the config file")
	f.BoolVar(&o.plot, "plot", true, "Plot capacity per append")
	f.IntVar(&o.width, "width", 72, "Maximum plot width")
	f.IntVar(&o.scenario.InitialLen, "initial", o.scenario.InitialLen, "Default-constructed elements before appending")
	f.IntVar(&o.scenario.Reserve, "reserve", 0, "Capacity to reserve before appending")
	f.IntVar(&o.scenario.Appends, "appends", o.scenario.Appends, "Number of appends")
	f.StringVar(&o.scenario.Allocator, "allocator", scenario.AllocHeap, "Allocator: heap, arena or mmap")
	f.IntVar(&o.scenario.ArenaChunk, "chunk", 0, "Arena chunk size in slots (arena allocator)")
	f.BoolVar(&o.scenario.ShrinkAfter, "shrink", false, "Shrink to fit after the last append")
	return cmd
}

func runScenarios(w io.Writer, o *runOptions, args []string) error {
	list, err := selectScenarios(o, args)
	if err != nil {
		return err
	}
	for i, s := range list {
		if i > 0 {
			fmt.Fprintln(w)
		}
		tr, err := scenario.Run(s, logger)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		printTrace(w, tr, o)
	}
	return nil
}

func selectScenarios(o *runOptions, args []string) ([]scenario.Scenario, error) {
	if o.config == "" {
		if o.all || len(args) > 0 {
			return nil, fmt.Errorf("scenario names and --all require --config")
		}
		return []scenario.Scenario{o.scenario}, nil
	}

	file, err := scenario.Load(o.config)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded scenarios", "path", o.config, "count", len(file.Scenarios))

	switch {
	case o.all:
		return file.Scenarios, nil
	case len(args) == 1:
		s, ok := file.Find(args[0])
		if !ok {
			return nil, fmt.Errorf("scenario %q not found in %s", args[0], o.config)
		}
		return []scenario.Scenario{s}, nil
	case len(file.Scenarios) > 0:
		return file.Scenarios[:1], nil
	default:
		return nil, fmt.Errorf("%s holds no scenarios", o.config)
	}
}

func printTrace(w io.Writer, tr *scenario.Trace, o *runOptions) {
	s := tr.Scenario
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Scenario %s", s.Name)))
	fmt.Fprintf(w, "%s %s  %s %d  %s %d  %s %d\n",
		labelStyle.Render("allocator"), valueStyle.Render(s.Allocator),
		labelStyle.Render("initial"), s.InitialLen,
		labelStyle.Render("reserve"), s.Reserve,
		labelStyle.Render("appends"), s.Appends)

	for _, e := range tr.Events {
		line := e.String()
		if e.Kind == scenario.EventGrow {
			line = growStyle.Render(line)
		}
		fmt.Fprintln(w, "  "+line)
	}

	m := tr.Metrics
	fmt.Fprintf(w, "%s %d  %s %d  %s %d\n",
		labelStyle.Render("final len"), tr.Len,
		labelStyle.Render("cap"), tr.Cap,
		labelStyle.Render("growths"), tr.Growths())
	fmt.Fprintf(w, "%s %d calls, %d slots  %s %d calls, %d slots  %s %d slots\n",
		labelStyle.Render("allocated"), m.AllocCalls, m.Allocated,
		labelStyle.Render("deallocated"), m.DeallocCalls, m.Deallocated,
		labelStyle.Render("peak"), m.Peak)
	if a := tr.Arena; a != nil {
		fmt.Fprintf(w, "%s %d/%d slots in %d chunks (%.1f%%)  %s %d slots\n",
			labelStyle.Render("arena"), a.SizeInUse, a.Capacity, a.NumChunks, a.Utilization*100,
			labelStyle.Render("stranded"), tr.Stranded())
	}

	if o.plot && len(tr.Caps) > 1 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, plotCapacities(tr.Caps, o.width, "capacity per append"))
	}
}

func plotCapacities(caps []float64, width int, caption string) string {
	opts := []asciigraph.Option{
		asciigraph.Height(10),
		asciigraph.Caption(caption),
	}
	if width > 0 && len(caps) > width {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(caps, opts...)
}
