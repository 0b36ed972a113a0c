package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	homeslice "github.com/tavmurphy1/homeslice-go"
)

func newRecipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Manage saved recipes",
	}
	cmd.AddCommand(newRecipesListCmd())
	cmd.AddCommand(newRecipesShowCmd())
	cmd.AddCommand(newRecipesGenerateCmd())
	cmd.AddCommand(newRecipesDeleteCmd())
	return cmd
}

func newRecipesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			recipes, err := c.ListRecipes(ctx)
			if err != nil {
				log.Error().Err(err).Msg("list recipes failed")
				return err
			}
			if len(recipes) == 0 {
				fmt.Println("You have no saved recipes.")
				return nil
			}
			for _, r := range recipes {
				fmt.Printf("%s  %s\n", r.ID, r.Title)
			}
			return nil
		},
	}
}

func newRecipesShowCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a recipe in full",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			r, err := c.GetRecipe(ctx, id)
			if err != nil {
				log.Error().Err(err).Str("id", id).Msg("get recipe failed")
				return err
			}

			fmt.Println(r.Title)
			if r.Description != "" {
				fmt.Println(r.Description)
			}
			fmt.Printf("prep %dm, cook %dm, serves %d\n\n", r.PrepTime, r.CookTime, r.Servings)
			fmt.Println("Ingredients:")
			for _, ing := range r.Ingredients {
				fmt.Printf("  %g %s %s\n", ing.Quantity, ing.Unit, ing.Name)
			}
			fmt.Println("\nSteps:")
			for i, step := range r.Steps {
				fmt.Printf("  %d. %s\n", i+1, step)
			}
			if r.ImageURL != "" {
				fmt.Printf("\n%s\n", r.ImageURL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Recipe id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newRecipesGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a recipe from the current pantry",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			// Generation calls a model on the backend and runs long.
			ctx, cancel := context.WithTimeout(cmd.Context(), 90*time.Second)
			defer cancel()

			items, err := c.GetPantry(ctx)
			if err != nil {
				log.Error().Err(err).Msg("list pantry failed")
				return err
			}
			var inputs []homeslice.IngredientInput
			for _, it := range items {
				if it.Quantity > 0 {
					inputs = append(inputs, it.Input())
				}
			}

			r, err := c.GenerateRecipe(ctx, inputs)
			if err != nil {
				log.Error().Err(err).Msg("generate recipe failed")
				return err
			}
			fmt.Printf("Generated: %s  %s\n", r.ID, r.Title)
			return nil
		},
	}
}

func newRecipesDeleteCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a saved recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			if err := c.DeleteRecipe(ctx, id); err != nil {
				log.Error().Err(err).Str("id", id).Msg("delete recipe failed")
				return err
			}
			fmt.Printf("Deleted: %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Recipe id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
