package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewForgotPasswordCmd создаёт CLI-команду запроса сброса пароля.
//
// Команда отправляет на сервер email пользователя; если такой аккаунт
// существует, на него придёт письмо со ссылкой сброса. Сервер отвечает
// одинаково для существующих и несуществующих адресов.
//
// Пример использования:
//
//	recipes forgot-password --email achola@example.com
func NewForgotPasswordCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Запросить письмо для сброса пароля",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			if err := c.ForgotPassword(email); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "reset link sent if the account exists")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.MarkFlagRequired("email")

	return cmd
}
