package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// requireToken проверяет, что пользователь залогинен.
func requireToken(app *App) (string, error) {
	if app.Creds == nil || app.Creds.Token == "" {
		return "", errors.New("not logged in; run `recipes login` first")
	}
	return app.Creds.Token, nil
}

// NewCategoryCmd создаёт группу CLI-команд для работы с категориями рецептов.
//
// Подкоманды: create, list, get, update, delete.
// Все подкоманды требуют сохранённого access токена (команда login).
//
// Примеры использования:
//
//	recipes category create --name Breakfast --description "Morning meals"
//	recipes category list
//	recipes category update <id> --name Brunch --description "Late mornings"
//	recipes category delete <id>
func NewCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Работа с категориями рецептов",
	}

	cmd.AddCommand(newCategoryCreateCmd(app))
	cmd.AddCommand(newCategoryListCmd(app))
	cmd.AddCommand(newCategoryGetCmd(app))
	cmd.AddCommand(newCategoryUpdateCmd(app))
	cmd.AddCommand(newCategoryDeleteCmd(app))

	return cmd
}

func newCategoryCreateCmd(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать категорию",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.CreateCategory(token, name, description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created category %s (%s)\n", resp.Category.Name, resp.Category.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("description")

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Показать все категории",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.ListCategories(token)
			if err != nil {
				return err
			}
			for _, cat := range resp.Categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", cat.ID, cat.Name, cat.Description)
			}
			return nil
		},
	}
}

func newCategoryGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Показать категорию по id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.GetCategory(token, args[0])
			if err != nil {
				return err
			}
			cat := resp.Category
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", cat.ID, cat.Name, cat.Description)
			return nil
		},
	}
}

func newCategoryUpdateCmd(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить категорию",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.UpdateCategory(token, args[0], name, description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated category %s (%s)\n", resp.Category.Name, resp.Category.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("description")

	return cmd
}

func newCategoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить категорию (вместе с её рецептами)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteCategory(token, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "category deleted")
			return nil
		},
	}
}
