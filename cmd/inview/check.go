package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-inview"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var (
		el inview.Rect
		m  inview.Metrics
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate one element against one viewport",
		Long: `Prints true if the element box overlaps the viewport, false otherwise.
Partial overlap counts as visible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			visible := inview.Visible(el, m)
			root.logger.Debug("check", "element", fmt.Sprintf("%+v", el), "metrics", m.String(), "inViewport", visible)
			fmt.Fprintln(cmd.OutOrStdout(), visible)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&el.Top, "top", 0, "Element top offset in document coordinates")
	f.IntVar(&el.Left, "left", 0, "Element left offset in document coordinates")
	f.IntVar(&el.Width, "width", 0, "Element width")
	f.IntVar(&el.Height, "height", 0, "Element height")
	f.IntVar(&m.Width, "vw", 1366, "Viewport width")
	f.IntVar(&m.Height, "vh", 768, "Viewport height")
	f.IntVar(&m.ScrollX, "sx", 0, "Horizontal scroll offset")
	f.IntVar(&m.ScrollY, "sy", 0, "Vertical scroll offset")
	return cmd
}
