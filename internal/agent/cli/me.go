package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCmd создаёт команду, показывающую текущего пользователя.
// Удобно для проверки пары email/пароль.
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Показать текущего пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := app.credentials(cmd)
			if err != nil {
				return err
			}

			u, err := app.client().Me(creds)
			if err != nil {
				return err
			}
			if err := app.remember(creds.Email); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "id=%s\nname=%s %s\nemail=%s\n", u.ID, u.FirstName, u.LastName, u.EmailAddress)
			return nil
		},
	}
}
