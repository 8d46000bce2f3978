package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/designlibre/layout"
)

// solveCommand runs the engine over a scene file and prints resolved geometry.
func (c *CLI) solveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <scene.toml>",
		Short: "Solve a scene and print resolved node geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, order, err := loadScene(args[0])
			if err != nil {
				return err
			}
			defer engine.Dispose()

			engine.Events().Subscribe(func(ev layout.Event) {
				switch ev.Kind {
				case layout.LayoutCompleted:
					c.Logger.Debug("solve complete", "duration", ev.Duration)
				case layout.LayoutError:
					c.Logger.Warn("solve failed", "err", ev.Err)
				}
			})

			engine.LayoutNow()

			out := cmd.OutOrStdout()
			for _, id := range order {
				d := engine.GetLayout(id)
				if d == nil {
					c.Logger.Warn("node skipped", "node", id)
					continue
				}
				fmt.Fprintf(out, "%-20s x=%9.2f y=%9.2f w=%9.2f h=%9.2f\n",
					id, d.X, d.Y, d.Width, d.Height)
			}
			return nil
		},
	}
}

// minsizeCommand prints the hug-content size of an auto-layout container.
func (c *CLI) minsizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "minsize <scene.toml> <node-id>",
		Short: "Print the hug-content size of an auto-layout container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, _, err := loadScene(args[0])
			if err != nil {
				return err
			}
			defer engine.Dispose()

			id := layout.NodeID(args[1])
			size, ok := engine.AutoLayoutMinSize(id)
			if !ok {
				return fmt.Errorf("node %q has no active auto-layout", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s min-size: w=%.2f h=%.2f\n", id, size.Width, size.Height)
			return nil
		},
	}
}
