// Command nodeflow opens a demo node-graph canvas: drag nodes to move them
// (hold Shift to skip snapping), drag a corner of a selected node to resize
// it, drag empty space with the right or middle button to pan, and scroll
// to zoom.
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/nodeflow"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		scriptPath string
		verbose    bool
		width      int
		height     int
	)

	cmd := &cobra.Command{
		Use:          "nodeflow",
		Short:        "Interactive node-graph canvas demo",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				Prefix:          "nodeflow",
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			nodeflow.SetLogger(logger)

			cfg := nodeflow.DefaultEditorConfig()
			if configPath != "" {
				var err error
				if cfg, err = nodeflow.LoadEditorConfig(configPath); err != nil {
					return err
				}
			}

			ed := nodeflow.NewEditor(cfg)
			if verbose {
				ed.SetDebugMode(true)
			}
			populate(ed)

			ed.OnLocationChanged(func(evt nodeflow.LocationEvent) {
				if evt.Final {
					logger.Info("node placed", "node", evt.Node.Name,
						"x", evt.Location.X, "y", evt.Location.Y,
						"w", evt.Node.Width, "h", evt.Node.Height)
				}
			})

			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				runner, err := nodeflow.LoadGestureScript(data)
				if err != nil {
					return err
				}
				ed.SetScriptRunner(runner)
			}

			return nodeflow.Run(ed, nodeflow.RunConfig{
				Title:     "nodeflow",
				Width:     width,
				Height:    height,
				Resizable: true,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "editor config file (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "JSON gesture script to replay on start")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log gesture transitions")
	cmd.Flags().IntVar(&width, "width", 1280, "window width in pixels")
	cmd.Flags().IntVar(&height, "height", 720, "window height in pixels")
	return cmd
}

// populate adds a small sample graph.
func populate(ed *nodeflow.Editor) {
	colors := []nodeflow.Color{
		{R: 0.25, G: 0.45, B: 0.7, A: 1},
		{R: 0.3, G: 0.6, B: 0.4, A: 1},
		{R: 0.65, G: 0.4, B: 0.3, A: 1},
	}
	for i, c := range colors {
		n := nodeflow.NewNode(fmt.Sprintf("node%d", i), 180, 110)
		n.Color = c
		n.Resizable = true
		n.SetLocation(float64(120+i*240), 200)

		header := nodeflow.NewWidget("header", 180, 24)
		header.Color = nodeflow.Color{R: c.R * 0.7, G: c.G * 0.7, B: c.B * 0.7, A: 1}
		n.AddChild(header)

		// Presses on the dropdown belong to it, not to the node drag.
		dropdown := nodeflow.NewWidget("dropdown", 120, 20)
		dropdown.SetLocation(30, 50)
		dropdown.Color = nodeflow.Color{R: 0.15, G: 0.15, B: 0.18, A: 1}
		dropdown.BlocksDrag = true
		n.AddChild(dropdown)

		ed.AddNode(n)
	}
}
