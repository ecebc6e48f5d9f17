package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flanksource/docforge"
	"github.com/flanksource/docforge/api"
	"github.com/flanksource/docforge/layout"
	"github.com/flanksource/docforge/renderers"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docforge",
		Short: "Render tagged text into themed PDF, DOCX or PPTX documents",
		Long: `Docforge reads a body of text using a simple heading/bullet convention
(#, ##, ### headings, "- " bullets, plain paragraphs) and renders it into a
paginated PDF, a flowing DOCX, a capacity-paginated PPTX deck, or plain text,
themed with a palette derived deterministically from the title.`,
		Example: `  docforge generate --title "Quarterly Report" --format pptx report.md
  cat notes.txt | docforge generate --title Notes --format pdf
  docforge palettes`,
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newPalettesCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func newGenerateCommand() *cobra.Command {
	var title string
	var layoutFile string
	var options renderers.Options

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate a document from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			if layoutFile != "" {
				cfg, err := layout.LoadConfig(layoutFile)
				if err != nil {
					return err
				}
				options.Layout = &cfg
			}

			path, err := docforge.Generate(title, raw, options)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title (drives naming and palette)")
	cmd.Flags().StringVar(&layoutFile, "layout-config", "", "YAML file overriding layout tunables")
	renderers.BindFlags(cmd.Flags(), &options)
	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func newPalettesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "Preview the built-in color palettes",
		RunE: func(cmd *cobra.Command, args []string) error {
			width := 80
			if term.IsTerminal(int(os.Stdout.Fd())) {
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					width = w
				}
			}
			plain := termenv.ColorProfile() == termenv.Ascii

			for _, p := range api.Palettes {
				if plain {
					fmt.Printf("%s: bg=#%s accent=#%s accent2=#%s text=#%s soft=#%s\n",
						p.Name, p.Background.Hex(), p.Accent.Hex(), p.Accent2.Hex(),
						p.TextMain.Hex(), p.TextSoft.Hex())
					continue
				}
				name := lipgloss.NewStyle().Bold(true).Render(p.Name)
				row := []string{}
				for _, role := range []struct {
					label string
					color api.RGB
				}{
					{"background", p.Background},
					{"accent", p.Accent},
					{"accent2", p.Accent2},
					{"text_main", p.TextMain},
					{"text_soft", p.TextSoft},
				} {
					sw := lipgloss.NewStyle().
						Background(role.color.Lipgloss()).
						Foreground(p.TextMain.Lipgloss()).
						Padding(0, 1).
						Render(role.label)
					row = append(row, sw)
				}
				line := strings.Join(row, " ")
				if lipgloss.Width(line) > width {
					line = strings.Join(row, "\n")
				}
				fmt.Printf("%s\n%s\n\n", name, line)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("docforge %s (%s)\n", version, commit)
		},
	}
}
