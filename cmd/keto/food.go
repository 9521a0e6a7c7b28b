// ABOUTME: CLI commands for managing the food catalog.
// ABOUTME: Add, list, search, and delete foods with per-100g values.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/keto/internal/models"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food catalog",
	Long: `Manage the catalog of foods used for logging.

Each food stores carbohydrates and calories per 100g. A food's name is its
key: adding a food with an existing name replaces its values. Deleting a
food also deletes every log entry that references it.`,
}

var foodAddCmd = &cobra.Command{
	Use:   "add <name> <carbs-per-100g> <calories-per-100g>",
	Short: "Add or replace a catalog food",
	Long: `Add a food to the catalog, or replace its values if it already exists.

EXAMPLES:

  keto food add "Feta" 4.1 264
  keto food add "Mandeln" 9.1 576`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		carbs, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid carbs value: %s", args[1])
		}
		calories, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid calories value: %s", args[2])
		}

		food := models.NewFoodItem(args[0], carbs, calories)
		if err := store.SaveFoodItem(food); err != nil {
			return fmt.Errorf("failed to save food: %w", err)
		}

		color.Green("✓ Saved %s", food.Name)
		fmt.Printf("  %.1fg carbs, %.0f kcal per 100g\n", food.CarbsPer100g, food.CaloriesPer100g)
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.ListFoodItems()
		if err != nil {
			return fmt.Errorf("failed to list foods: %w", err)
		}
		printFoods(foods)
		return nil
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search catalog foods by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.SearchFoodItems(args[0])
		if err != nil {
			return fmt.Errorf("failed to search foods: %w", err)
		}
		printFoods(foods)
		return nil
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a catalog food and its log entries",
	Long: `Delete a food from the catalog.

CAUTION:

  Every log entry referencing the food is deleted with it. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteFoodItem(args[0]); err != nil {
			return err
		}
		color.Yellow("✗ Deleted %s (and its log entries)", args[0])
		return nil
	},
}

func printFoods(foods []*models.FoodItem) {
	if len(foods) == 0 {
		fmt.Println("No foods found.")
		return
	}
	faint := color.New(color.Faint)
	for _, f := range foods {
		fmt.Printf("%s %6.1fg carbs %7.0f kcal %s\n",
			padRight(f.Name, 24), f.CarbsPer100g, f.CaloriesPer100g,
			faint.Sprint("per 100g"))
	}
}

func init() {
	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodSearchCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	rootCmd.AddCommand(foodCmd)
}
