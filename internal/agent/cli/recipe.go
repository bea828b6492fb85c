package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/achola/yummy-recipes/internal/agent/api"
)

// NewRecipeCmd создаёт группу CLI-команд для работы с рецептами.
//
// Подкоманды: create, list, get, update, delete.
// Все подкоманды требуют сохранённого access токена (команда login).
//
// Примеры использования:
//
//	recipes recipe create --category-id <uuid> --title "Espresso" --ingredients "coffee, water" --steps "brew it"
//	recipes recipe list --page 1 --per-page 10 --q espresso
//	recipes recipe delete <id>
func NewRecipeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Работа с рецептами",
	}

	cmd.AddCommand(newRecipeCreateCmd(app))
	cmd.AddCommand(newRecipeListCmd(app))
	cmd.AddCommand(newRecipeGetCmd(app))
	cmd.AddCommand(newRecipeUpdateCmd(app))
	cmd.AddCommand(newRecipeDeleteCmd(app))

	return cmd
}

// recipeFlags регистрирует общие флаги команд create/update.
func recipeFlags(cmd *cobra.Command, req *api.RecipeRequest) {
	cmd.Flags().StringVar(&req.Title, "title", "", "recipe title")
	cmd.Flags().StringVar(&req.Ingredients, "ingredients", "", "recipe ingredients")
	cmd.Flags().StringVar(&req.Steps, "steps", "", "cooking steps")
	cmd.Flags().StringVar(&req.CategoryID, "category-id", "", "category id (uuid)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("ingredients")
	cmd.MarkFlagRequired("steps")
	cmd.MarkFlagRequired("category-id")
}

func newRecipeCreateCmd(app *App) *cobra.Command {
	var req api.RecipeRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать рецепт",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.CreateRecipe(token, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created recipe %s (%s)\n", resp.Recipe.Title, resp.Recipe.ID)
			return nil
		},
	}

	recipeFlags(cmd, &req)

	return cmd
}

func newRecipeListCmd(app *App) *cobra.Command {
	var page, perPage int
	var q string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Показать страницу рецептов",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.ListRecipes(token, page, perPage, q)
			if err != nil {
				return err
			}
			for _, r := range resp.Recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.ID, r.Title)
			}
			p := resp.Pagination
			fmt.Fprintf(cmd.OutOrStdout(), "page %d/%d, total %d\n", p.Page, p.Pages, p.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "page size")
	cmd.Flags().StringVar(&q, "q", "", "title substring filter")

	return cmd
}

func newRecipeGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Показать рецепт по id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.GetRecipe(token, args[0])
			if err != nil {
				return err
			}
			r := resp.Recipe
			fmt.Fprintf(cmd.OutOrStdout(), "title: %s\ningredients: %s\nsteps: %s\n", r.Title, r.Ingredients, r.Steps)
			return nil
		},
	}
}

func newRecipeUpdateCmd(app *App) *cobra.Command {
	var req api.RecipeRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить рецепт",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.UpdateRecipe(token, args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated recipe %s (%s)\n", resp.Recipe.Title, resp.Recipe.ID)
			return nil
		},
	}

	recipeFlags(cmd, &req)

	return cmd
}

func newRecipeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить рецепт",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteRecipe(token, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "recipe deleted")
			return nil
		},
	}
}
