package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/digidrobe/digidrobe-go/internal/domain"
	"github.com/digidrobe/digidrobe-go/internal/storage"
)

func newWardrobeCmd(d *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wardrobe",
		Short: "Manage closet items",
	}

	cmd.AddCommand(newWardrobeListCmd(d))
	cmd.AddCommand(newWardrobeShowCmd(d))
	cmd.AddCommand(newWardrobeAddCmd(d))
	cmd.AddCommand(newWardrobeUpdateCmd(d))
	cmd.AddCommand(newWardrobeDeleteCmd(d))

	return cmd
}

func newWardrobeListCmd(d *Deps) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List closet items, optionally filtered by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := d.API.GetWardrobe(cmd.Context(), category)
			if err == nil {
				if saveErr := d.Store.SaveWardrobe(category, items); saveErr != nil {
					d.Log.Warnw("snapshot save failed", "error", saveErr)
				}
				return renderResult(cmd, items)
			}

			// Backend unreachable or refusing: fall back to the last
			// snapshot so the closet still renders offline.
			cached, savedAt, loadErr := d.Store.LoadWardrobe(category)
			if loadErr != nil {
				if !errors.Is(loadErr, storage.ErrNoSnapshot) {
					d.Log.Warnw("snapshot load failed", "error", loadErr)
				}
				return err
			}
			d.Log.Warnw("backend unavailable, showing cached wardrobe",
				"error", err, "saved_at", savedAt)
			return renderResult(cmd, cached)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category (tops, bottoms, layers, shoes, accessories)")
	return cmd
}

func newWardrobeShowCmd(d *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one closet item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			item, err := d.API.GetClothingItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			return renderResult(cmd, item)
		},
	}
}

func newWardrobeAddCmd(d *Deps) *cobra.Command {
	var patch domain.ItemPatch
	var favorite bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a closet item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if patch.Name == "" || patch.Category == "" {
				return fmt.Errorf("--name and --category are required")
			}
			if cmd.Flags().Changed("favorite") {
				patch.IsFavorite = &favorite
			}
			item, err := d.API.AddClothingItem(cmd.Context(), patch)
			if err != nil {
				return err
			}
			d.Log.Infow("item added", "id", item.ID, "name", item.Name)
			return renderResult(cmd, item)
		},
	}

	addItemFlags(cmd, &patch, &favorite)
	return cmd
}

func newWardrobeUpdateCmd(d *Deps) *cobra.Command {
	var patch domain.ItemPatch
	var favorite bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a closet item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("favorite") {
				patch.IsFavorite = &favorite
			}
			item, err := d.API.UpdateClothingItem(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			return renderResult(cmd, item)
		},
	}

	addItemFlags(cmd, &patch, &favorite)
	return cmd
}

func newWardrobeDeleteCmd(d *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a closet item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			if err := d.API.DeleteClothingItem(cmd.Context(), id); err != nil {
				return err
			}
			d.Log.Infow("item deleted", "id", id)
			return nil
		},
	}
}

func addItemFlags(cmd *cobra.Command, patch *domain.ItemPatch, favorite *bool) {
	cmd.Flags().StringVar(&patch.Name, "name", "", "display name")
	cmd.Flags().StringVar(&patch.Category, "category", "", "category (tops, bottoms, layers, shoes, accessories)")
	cmd.Flags().StringVar(&patch.PrimaryColor, "primary-color", "", "primary color")
	cmd.Flags().StringVar(&patch.SecondaryColor, "secondary-color", "", "secondary color")
	cmd.Flags().StringVar(&patch.Style, "style", "", "style tag (casual, formal, sporty, streetwear)")
	cmd.Flags().StringVar(&patch.Season, "season", "", "season tag (summer, winter, all-season)")
	cmd.Flags().StringVar(&patch.ImagePath, "image", "", "image reference returned by image processing")
	cmd.Flags().BoolVar(favorite, "favorite", false, "mark as favorite")
}

func parseItemID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
