package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Пример использования:
//
//	courses register --first-name Joe --last-name Smith --email joe@smith.com
//
// При успехе адрес сервера и email сохраняются в настройках.
func NewRegisterCmd(app *App) *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  courses register --first-name Joe --last-name Smith --email joe@smith.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := app.credentials(cmd)
			if err != nil {
				return err
			}

			err = app.client().Register(apimodels.CreateUserRequest{
				FirstName:    firstName,
				LastName:     lastName,
				EmailAddress: creds.Email,
				Password:     creds.Password,
			})
			if err != nil {
				return err
			}

			if err := app.remember(creds.Email); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registration successful")
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")

	return cmd
}
