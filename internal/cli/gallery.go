package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/drawnet/drawnet/pkg/gallery"
)

// galleryCommand creates the gallery command group. Without a subcommand
// it opens the interactive scene picker.
func (c *CLI) galleryCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{view: viewDiagram}
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse and render the built-in scene gallery",
		Long: `Browse the built-in scene gallery.

Without a subcommand, gallery opens an interactive picker and renders the
selected scene with the given flags. Use 'gallery list' for a plain table
and 'gallery render' to render scenes non-interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveRenderOpts(&opts, &formatsStr, cmd.Flags().Changed); err != nil {
				return err
			}
			return c.runGalleryInteractive(cmd.Context(), &opts, &lf, cmd.Flags().Changed)
		},
	}

	addRenderFlags(cmd, &opts, &formatsStr)
	addLayoutFlags(cmd, &lf)

	cmd.AddCommand(c.galleryListCommand())
	cmd.AddCommand(c.galleryRenderCommand())

	return cmd
}

func (c *CLI) galleryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := listScenes()
			fmt.Println(sceneTable(entries, -1))
			printNextStep("Render a scene", "drawnet render "+entries[0].name)
			return nil
		},
	}
}

func (c *CLI) galleryRenderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{view: viewDiagram}
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:       "render [scene|all]",
		Short:     "Render one scene or the whole gallery",
		Args:      cobra.ExactArgs(1),
		ValidArgs: append(gallery.Names(), "all"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveRenderOpts(&opts, &formatsStr, cmd.Flags().Changed); err != nil {
				return err
			}
			if args[0] == "all" {
				return c.runGalleryRenderAll(cmd.Context(), &opts, &lf, cmd.Flags().Changed)
			}
			scene, err := gallery.Lookup(args[0])
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), scene, &opts, &lf, cmd.Flags().Changed)
		},
	}

	addRenderFlags(cmd, &opts, &formatsStr)
	addLayoutFlags(cmd, &lf)

	return cmd
}

// runGalleryInteractive opens the scene picker and renders the selection.
func (c *CLI) runGalleryInteractive(ctx context.Context, opts *renderOpts, lf *layoutFlags, changed func(string) bool) error {
	entries := listScenes()

	m := NewSceneListModel(entries)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(SceneListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}

	printNewline()
	return c.runRender(ctx, fm.Selected, opts, lf, changed)
}

// runGalleryRenderAll renders every scene in the gallery.
func (c *CLI) runGalleryRenderAll(ctx context.Context, opts *renderOpts, lf *layoutFlags, changed func(string) bool) error {
	if opts.output != "" {
		if err := os.MkdirAll(opts.output, 0755); err != nil {
			return err
		}
	}

	prog := newProgress(c.Logger)
	scenes := gallery.All()
	files := 0
	for _, scene := range scenes {
		if err := ctx.Err(); err != nil {
			return err
		}
		written, stats, err := c.renderScene(scene, opts, lf, changed)
		if err != nil {
			return fmt.Errorf("%s: %w", scene.Name, err)
		}
		printSuccess("Rendered %s", scene.Name)
		for _, path := range written {
			printFile(path)
		}
		printStats(stats.shapes, stats.connectors)
		files += len(written)
	}
	prog.done(fmt.Sprintf("Rendered %d scenes to %d files", len(scenes), files))
	return nil
}
