package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digidrobe/digidrobe-go/internal/domain"
	"github.com/digidrobe/digidrobe-go/internal/storage"
	"github.com/digidrobe/digidrobe-go/pkg/wardrobe"
)

func newOutfitCmd(d *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outfit",
		Short: "Outfit recommendations and history",
	}

	cmd.AddCommand(newOutfitTodayCmd(d))
	cmd.AddCommand(newOutfitGenerateCmd(d))
	cmd.AddCommand(newOutfitFeedbackCmd(d))
	cmd.AddCommand(newOutfitHistoryCmd(d))

	return cmd
}

func newOutfitTodayCmd(d *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's recommended outfit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outfit, err := d.API.GetTodaysOutfit(cmd.Context())
			if err == nil {
				if saveErr := d.Store.SaveOutfit(*outfit); saveErr != nil {
					d.Log.Warnw("snapshot save failed", "error", saveErr)
				}
				return renderResult(cmd, outfit)
			}

			cached, savedAt, loadErr := d.Store.LastOutfit()
			if loadErr != nil {
				if !errors.Is(loadErr, storage.ErrNoSnapshot) {
					d.Log.Warnw("snapshot load failed", "error", loadErr)
				}
				return err
			}
			d.Log.Warnw("backend unavailable, showing last known outfit",
				"error", err, "saved_at", savedAt)
			return renderResult(cmd, cached)
		},
	}
}

func newOutfitGenerateCmd(d *Deps) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh outfit recommendation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outfit, err := d.API.GenerateOutfit(cmd.Context(), style)
			if err != nil {
				return err
			}
			if saveErr := d.Store.SaveOutfit(*outfit); saveErr != nil {
				d.Log.Warnw("snapshot save failed", "error", saveErr)
			}
			return renderResult(cmd, outfit)
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", "style preference (casual, formal, sporty, streetwear)")
	return cmd
}

func newOutfitFeedbackCmd(d *Deps) *cobra.Command {
	var liked, saved bool

	cmd := &cobra.Command{
		Use:   "feedback <id>",
		Short: "Record liked/saved feedback on an outfit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			// Only flags the user actually set go on the wire.
			var feedback domain.OutfitFeedback
			if cmd.Flags().Changed("liked") {
				feedback.Liked = &liked
			}
			if cmd.Flags().Changed("saved") {
				feedback.Saved = &saved
			}
			if feedback.Liked == nil && feedback.Saved == nil {
				return fmt.Errorf("set at least one of --liked or --saved")
			}

			outfit, err := d.API.SubmitOutfitFeedback(cmd.Context(), id, feedback)
			if err != nil {
				return err
			}
			return renderResult(cmd, outfit)
		},
	}

	cmd.Flags().BoolVar(&liked, "liked", false, "whether you liked the outfit")
	cmd.Flags().BoolVar(&saved, "saved", false, "whether to save the outfit")
	return cmd
}

func newOutfitHistoryCmd(d *Deps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past outfits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outfits, err := d.API.GetOutfitHistory(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return renderResult(cmd, outfits)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", wardrobe.DefaultHistoryLimit, "maximum number of outfits")
	return cmd
}
