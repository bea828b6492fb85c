package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере Yummy Recipes
// с использованием имени, email и пароля. Флаги --username и --email
// обязательны; пароль передаётся флагом --password, через stdin
// (--password-stdin) или запрашивается интерактивно со скрытым вводом.
//
// Пример использования:
//
//	recipes register --username achola --email achola@example.com
//
// В случае успешной регистрации пользователю выводится сообщение
// об успешном завершении операции.
func NewRegisterCmd(app *App) *cobra.Command {
	var username, email, password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  recipes register --username achola --email achola@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw := password
			if pw == "" {
				var err error
				pw, err = ReadPassword(cmd, passwordStdin)
				if err != nil {
					return err
				}
			}

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Register(username, email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registration successful: %s <%s>\n", resp.User.Username, resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username for registration")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration (omit to prompt)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")

	return cmd
}
