package cli

import (
	"github.com/spf13/cobra"

	"github.com/digidrobe/digidrobe-go/internal/extract"
)

func newImageCmd(d *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Clothing image processing and extraction",
	}

	cmd.AddCommand(newImageProcessCmd(d))
	cmd.AddCommand(newImageExtractCmd(d))

	return cmd
}

func newImageProcessCmd(d *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "process <path>",
		Short: "Upload a clothing photo for analysis",
		Long: `Uploads a local clothing photo to the backend, which removes the
background, detects the category, and extracts colors and attributes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processed, err := d.API.ProcessImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderResult(cmd, processed)
		},
	}
}

func newImageExtractCmd(d *Deps) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "extract <url>",
		Short: "Extract the main product image from a shop page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				result, err := extract.New(d.Web).Extract(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return renderResult(cmd, result)
			}

			result, err := d.API.ExtractImageFromURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderResult(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "extract locally instead of via the backend")
	return cmd
}
