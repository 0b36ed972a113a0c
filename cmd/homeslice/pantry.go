package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	homeslice "github.com/tavmurphy1/homeslice-go"
)

func newPantryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "Manage pantry ingredients",
	}
	cmd.AddCommand(newPantryListCmd())
	cmd.AddCommand(newPantryAddCmd())
	cmd.AddCommand(newPantryUpdateCmd())
	cmd.AddCommand(newPantryRemoveCmd())
	return cmd
}

func newPantryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pantry ingredients",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			items, err := c.GetPantry(ctx)
			if err != nil {
				log.Error().Err(err).Msg("list pantry failed")
				return err
			}
			if len(items) == 0 {
				fmt.Println("Your pantry is empty.")
				return nil
			}
			for _, it := range items {
				fmt.Printf("%s  %g %s %s\n", it.ID, it.Quantity, it.Unit, it.Name)
			}
			return nil
		},
	}
}

func newPantryAddCmd() *cobra.Command {
	var name, unit string
	var quantity float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an ingredient to the pantry",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			created, err := c.AddIngredient(ctx, homeslice.IngredientInput{Name: name, Quantity: quantity, Unit: unit})
			if err != nil {
				log.Error().Err(err).Str("name", name).Msg("add ingredient failed")
				return err
			}
			fmt.Printf("Added: %s  %g %s %s\n", created.ID, created.Quantity, created.Unit, created.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Ingredient name (required)")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Quantity (required)")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit of measure (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newPantryUpdateCmd() *cobra.Command {
	var id, name, unit string
	var quantity float64

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a pantry ingredient",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			updated, err := c.UpdateIngredient(ctx, id, homeslice.IngredientInput{Name: name, Quantity: quantity, Unit: unit})
			if err != nil {
				log.Error().Err(err).Str("id", id).Msg("update ingredient failed")
				return err
			}
			fmt.Printf("Updated: %s  %g %s %s\n", updated.ID, updated.Quantity, updated.Unit, updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Ingredient id (required)")
	cmd.Flags().StringVar(&name, "name", "", "Ingredient name (required)")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Quantity (required)")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit of measure (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newPantryRemoveCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a pantry ingredient",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			if err := c.DeleteIngredient(ctx, id); err != nil {
				log.Error().Err(err).Str("id", id).Msg("delete ingredient failed")
				return err
			}
			fmt.Printf("Removed: %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Ingredient id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
