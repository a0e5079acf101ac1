package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// NewListCmd создаёт команду вывода всех курсов.
func NewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список курсов",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.client().ListCourses()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tOWNER")
			for _, c := range list {
				owner := c.UserID
				if c.User != nil {
					owner = c.User.FirstName + " " + c.User.LastName
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Title, owner)
			}
			return tw.Flush()
		},
	}
}

// NewGetCmd создаёт команду вывода одного курса в JSON.
func NewGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Курс по id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client().GetCourse(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(c)
		},
	}
}

// courseFlags — поля курса для create/update.
type courseFlags struct {
	title, description, estimatedTime, materialsNeeded string
}

func (f *courseFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "course title")
	cmd.Flags().StringVar(&f.description, "description", "", "course description")
	cmd.Flags().StringVar(&f.estimatedTime, "estimated-time", "", "estimated time (optional)")
	cmd.Flags().StringVar(&f.materialsNeeded, "materials-needed", "", "materials needed (optional)")
}

func (f *courseFlags) request() apimodels.CourseRequest {
	req := apimodels.CourseRequest{Title: f.title, Description: f.description}
	if f.estimatedTime != "" {
		req.EstimatedTime = &f.estimatedTime
	}
	if f.materialsNeeded != "" {
		req.MaterialsNeeded = &f.materialsNeeded
	}
	return req
}

// NewCreateCmd создаёт команду создания курса. Владельцем становится пользователь --email.
func NewCreateCmd(app *App) *cobra.Command {
	var f courseFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать курс",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := app.credentials(cmd)
			if err != nil {
				return err
			}

			id, err := app.client().CreateCourse(f.request(), creds)
			if err != nil {
				return err
			}
			if err := app.remember(creds.Email); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "course created: %s\n", id)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

// NewUpdateCmd создаёт команду обновления курса.
// Обновление полное: незаданные необязательные поля очищаются.
func NewUpdateCmd(app *App) *cobra.Command {
	var f courseFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить свой курс",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := app.credentials(cmd)
			if err != nil {
				return err
			}

			if err := app.client().UpdateCourse(args[0], f.request(), creds); err != nil {
				return err
			}
			if err := app.remember(creds.Email); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "course updated")
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

// NewDeleteCmd создаёт команду удаления курса.
func NewDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить свой курс",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := app.credentials(cmd)
			if err != nil {
				return err
			}

			if err := app.client().DeleteCourse(args[0], creds); err != nil {
				return err
			}
			if err := app.remember(creds.Email); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "course deleted")
			return nil
		},
	}
}
