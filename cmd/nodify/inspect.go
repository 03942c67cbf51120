package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/nodify/recording"
)

func inspectCmd() *cobra.Command {
	var themePath string
	cmd := &cobra.Command{
		Use:   "inspect <script.yaml>",
		Short: "Replay a script and print the resulting graph, draw calls and metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t, err := loadInputs(args[0], themePath)
			if err != nil {
				return err
			}
			ss, err := newSession(s, t)
			if err != nil {
				return err
			}
			return ss.inspect(cmd.OutOrStdout(), len(s.Events))
		},
	}
	cmd.Flags().StringVar(&themePath, "theme", "", "TOML theme file")
	return cmd
}

func (ss *session) inspect(w io.Writer, events int) error {
	heading(w, "Nodes")
	var rows [][]string
	for _, n := range ss.scene.Nodes() {
		r := n.Rect()
		rows = append(rows, []string{
			n.Label(),
			fmt.Sprintf("%g,%g", r.X, r.Y),
			fmt.Sprintf("%gx%g", r.W, r.H),
			strconv.FormatFloat(n.Z(), 'f', 1, 64),
			statusIcon(n.Selected()),
		})
	}
	table(w, []string{"LABEL", "POS", "SIZE", "Z", "SELECTED"}, rows)

	heading(w, "Connections")
	rows = rows[:0]
	for _, c := range ss.scene.Connections() {
		ext := c.Extent()
		rows = append(rows, []string{
			c.A().String(),
			c.B().String(),
			fmt.Sprintf("%.0f,%.0f %.0fx%.0f", ext.X, ext.Y, ext.W, ext.H),
		})
	}
	table(w, []string{"FROM", "TO", "EXTENT"}, rows)

	heading(w, "View")
	vis := ss.view.VisibleSceneRect()
	fmt.Fprintf(w, "  scale %.3f, visible %.0f,%.0f %.0fx%.0f, %d/%d events consumed\n",
		ss.view.Scale(), vis.X, vis.Y, vis.W, vis.H, ss.consumed, events)

	heading(w, "Draw calls")
	r := ss.record()
	rows = rows[:0]
	for _, typ := range []recording.CommandType{
		recording.CmdClear, recording.CmdPush, recording.CmdFillPath,
		recording.CmdStrokePath, recording.CmdDrawText,
	} {
		rows = append(rows, []string{typ.String(), strconv.Itoa(r.Count(typ))})
	}
	table(w, []string{"COMMAND", "COUNT"}, rows)

	heading(w, "Metrics")
	samples, err := ss.reg.Samples()
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, s := range samples {
		rows = append(rows, []string{s.Name, s.Labels, strconv.FormatFloat(s.Value, 'g', -1, 64)})
	}
	table(w, []string{"METRIC", "LABELS", "VALUE"}, rows)
	return nil
}
