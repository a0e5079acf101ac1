package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCmd создаёт CLI-команду для отображения информации о сборке.
//
// Выводит версию, дату сборки (передаются через -ldflags) и версию Go.
//
// Пример использования:
//
//	courses version
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию и дату сборки",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "version=%s\nbuild_date=%s\ngo=%s\n", buildVersion, buildDate, runtime.Version())
		},
	}
}
