package main

import (
	"fmt"
	"os"

	"github.com/chertila/chertila-go/internal/engine"
	"github.com/chertila/chertila-go/pkg/chertila"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		outputPath string
		format     string
		width      int
		height     int
	)

	cmd := &cobra.Command{
		Use:   "render [command]",
		Short: "Render a plot command to an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := cfg.Render
			if cmd.Flags().Changed("format") {
				if opts.Format, err = chertila.ParseFormat(format); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("width") {
				opts.Width = width
			}
			if cmd.Flags().Changed("height") {
				opts.Height = height
			}

			img, err := chertila.Plot(args[0], opts)
			if err != nil {
				return userError(err)
			}

			if outputPath == "" {
				outputPath = "plot" + opts.Format.Extension()
			}
			if outputPath == "-" {
				_, err = cmd.OutOrStdout().Write(img)
				return err
			}
			if err := os.WriteFile(outputPath, img, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path, - for stdout (default: plot.<ext>)")
	cmd.Flags().StringVar(&format, "format", string(chertila.FormatPNG), "Image format: png, jpeg")
	cmd.Flags().IntVar(&width, "width", chertila.DefaultOptions().Width, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", chertila.DefaultOptions().Height, "Image height in pixels")
	return cmd
}

func newExportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export [command]",
		Short: "Export a plot command as an XLSX workbook with a scatter chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			req, err := chertila.Parse(args[0])
			if err != nil {
				return userError(err)
			}
			data, err := chertila.Export(req)
			if err != nil {
				return userError(err)
			}

			if outputPath == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "plot.xlsx", "Output file path, - for stdout")
	return cmd
}

// userError prefixes err with the message a user should see and keeps err
// in the chain for errors.Is.
func userError(err error) error {
	return fmt.Errorf("%s: %w", engine.UserMessage(err), err)
}
