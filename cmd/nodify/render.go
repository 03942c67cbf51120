package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// loadInputs reads the script and the optional theme.
func loadInputs(scriptPath, themePath string) (*Script, *Theme, error) {
	s, err := LoadScript(scriptPath)
	if err != nil {
		return nil, nil, err
	}
	if themePath == "" {
		return s, nil, nil
	}
	t, err := LoadTheme(themePath)
	if err != nil {
		return nil, nil, err
	}
	return s, t, nil
}

func renderCmd() *cobra.Command {
	var (
		output    string
		themePath string
	)
	cmd := &cobra.Command{
		Use:   "render <script.yaml>",
		Short: "Replay a script and render the view to PNG",
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
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := ss.renderPNG(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}

			vp := ss.view.Viewport()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%dx%d, %d nodes, %d connections)\n",
				statusIcon(true), output, int(vp.W), int(vp.H),
				len(ss.scene.Nodes()), len(ss.scene.Connections()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG path (default: script name with .png)")
	cmd.Flags().StringVar(&themePath, "theme", "", "TOML theme file")
	return cmd
}
