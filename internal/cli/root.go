// Package cli wires the digidrobe command tree. Everything a command
// needs arrives through Deps from the composition root; commands hold
// no package-level state.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/digidrobe/digidrobe-go/internal/config"
	"github.com/digidrobe/digidrobe-go/internal/storage"
	"github.com/digidrobe/digidrobe-go/pkg/httpclient"
	"github.com/digidrobe/digidrobe-go/pkg/wardrobe"
)

// Deps carries the shared collaborators injected into every command.
type Deps struct {
	Cfg   *config.Config
	Log   *zap.SugaredLogger
	API   *wardrobe.Client
	Store storage.Store
	Web   httpclient.Client
}

// NewRootCmd builds the digidrobe command tree.
func NewRootCmd(d *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digidrobe",
		Short: "Wardrobe management and outfit recommendations",
		Long: `Digidrobe is a client for the Digidrobe wardrobe service.

It manages your closet, fetches daily outfit recommendations, analyzes
clothing photos, and pulls product images straight from shop pages.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("output", "o", d.Cfg.Output, "output format: json or yaml")

	cmd.AddCommand(newHealthCmd(d))
	cmd.AddCommand(newWardrobeCmd(d))
	cmd.AddCommand(newOutfitCmd(d))
	cmd.AddCommand(newImageCmd(d))

	return cmd
}
