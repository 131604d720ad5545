package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/pkg/adapters/scene"
	"github.com/aretw0/quest/pkg/domain"
)

var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "Inspect and edit the simulated scene document",
	Long: `The scene document stands in for the host application.
It is stored in <dir>/.quest/scene.yaml and checked by "quest submit".`,
}

var sceneShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print objects, materials and viewports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			doc := s.rt.Scene.Snapshot()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "OBJECT\tKIND\tCOLLECTION\tMATERIALS")
			for _, o := range doc.Objects {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.Name, o.Kind, o.Collection, strings.Join(o.Materials, ","))
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "MATERIAL\tBASE COLOR")
			for _, m := range doc.Materials {
				c := m.BaseColor
				fmt.Fprintf(w, "%s\t%.3f %.3f %.3f %.3f\n", m.Name, c.R, c.G, c.B, c.A)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "VIEWPORT\tSHADING")
			for i, v := range doc.Viewports {
				fmt.Fprintf(w, "%d\t%s\n", i, v.Shading)
			}
			return w.Flush()
		})
	},
}

var sceneAddCmd = &cobra.Command{
	Use:   "add <primitive>",
	Short: "Add an object (" + strings.Join(scene.Primitives(), ", ") + ")",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			name, err := s.rt.Scene.AddObject(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added '%s'\n", name)
			return nil
		})
	},
}

var sceneRmCmd = &cobra.Command{
	Use:   "rm <object>...",
	Short: "Delete objects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			for _, name := range args {
				if err := s.rt.Scene.RemoveObject(name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed '%s'\n", name)
			}
			return nil
		})
	},
}

var sceneMaterialCmd = &cobra.Command{
	Use:   "material <object> <name>",
	Short: "Create a new material and assign it to an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			name, err := s.rt.Scene.NewMaterial(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Material '%s' assigned to '%s'\n", name, args[0])
			return nil
		})
	},
}

var sceneAssignCmd = &cobra.Command{
	Use:   "assign <object> <material>",
	Short: "Assign an existing material to an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			return s.rt.Scene.AssignMaterial(args[0], args[1])
		})
	},
}

var sceneColorCmd = &cobra.Command{
	Use:   "color <material> <r> <g> <b> [a]",
	Short: "Set the base color of a material (channels in 0..1)",
	Args:  cobra.RangeArgs(4, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColor(args[1:])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, s *session) error {
			return s.rt.Scene.SetBaseColor(args[0], c)
		})
	},
}

var sceneViewport int

var sceneShadingCmd = &cobra.Command{
	Use:       "shading <wireframe|solid|material|rendered>",
	Short:     "Set the shading mode of a viewport",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"wireframe", "solid", "material", "rendered"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := domain.ParseShading(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, s *session) error {
			return s.rt.Scene.SetShading(sceneViewport, mode)
		})
	},
}

var sceneResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the document to the baseline scene",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			return s.rt.Scene.ResetToBaseline(ctx)
		})
	},
}

func parseColor(args []string) (domain.Color, error) {
	values := []float64{0, 0, 0, 1}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return domain.Color{}, fmt.Errorf("invalid color channel %q: %w", arg, err)
		}
		if v < 0 || v > 1 {
			return domain.Color{}, fmt.Errorf("color channel %q out of range 0..1", arg)
		}
		values[i] = v
	}
	return domain.Color{R: values[0], G: values[1], B: values[2], A: values[3]}, nil
}

func init() {
	sceneShadingCmd.Flags().IntVar(&sceneViewport, "viewport", 0, "Viewport index")

	rootCmd.AddCommand(sceneCmd)
	sceneCmd.AddCommand(sceneShowCmd)
	sceneCmd.AddCommand(sceneAddCmd)
	sceneCmd.AddCommand(sceneRmCmd)
	sceneCmd.AddCommand(sceneMaterialCmd)
	sceneCmd.AddCommand(sceneAssignCmd)
	sceneCmd.AddCommand(sceneColorCmd)
	sceneCmd.AddCommand(sceneShadingCmd)
	sceneCmd.AddCommand(sceneResetCmd)
}
