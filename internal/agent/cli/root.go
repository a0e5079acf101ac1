// Package cli реализует командный интерфейс (CLI) клиента courses API.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку и сохранение локальных настроек (адрес сервера, email);
//   - запрос пароля для команд, которым нужна аутентификация;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-courses-api/internal/agent/api"
	"github.com/IvanChernomyrdin/go-courses-api/internal/agent/config"
)

// DefaultServerURL — адрес сервера, если он не задан ни флагом, ни в настройках.
const DefaultServerURL = "http://localhost:5000"

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://localhost:5000").
	ServerURL string
	// Insecure отключает проверку TLS-сертификата сервера.
	Insecure bool

	// Email и Password — учётные данные для команд на запись.
	Email         string
	Password      string
	PasswordStdin bool

	// SettingsPath — путь к файлу настроек.
	SettingsPath string
	// Settings — загруженные настройки. Может быть nil, если загрузка не выполнялась.
	Settings *config.Settings
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// В PersistentPreRunE загружаются сохранённые настройки: адрес сервера и email
// подставляются, если не заданы флагами.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "courses CLI — клиент courses API",
		Long: `courses CLI.

Команды:
  register  Регистрация нового пользователя
  me        Текущий пользователь
  list      Список курсов
  get       Курс по id
  create    Создать курс
  update    Обновить свой курс
  delete    Удалить свой курс
  version   Версия и дата сборки

Примеры:
  courses register --first-name Joe --last-name Smith --email joe@smith.com
  courses create --email joe@smith.com --title "Build a Basic Bookcase" --description "..."
  courses list

Пароль запрашивается без отображения на экране либо читается из stdin (--password-stdin).
В ~/.courses/settings.json сохраняются только адрес сервера и email.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.SettingsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.SettingsPath = p
			}

			s, err := config.Load(app.SettingsPath)
			if err != nil {
				return err
			}
			app.Settings = s

			if !cmd.Flags().Changed("server") && s.Server != "" {
				app.ServerURL = s.Server
			}
			if app.Email == "" {
				app.Email = s.Email
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")
	pf.BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification (dev only)")
	pf.StringVar(&app.Email, "email", "", "account email")
	pf.StringVar(&app.Password, "password", "", "account password (prefer the prompt or --password-stdin)")
	pf.BoolVar(&app.PasswordStdin, "password-stdin", false, "read password from stdin")
	pf.StringVar(&app.SettingsPath, "settings", "", "path to settings file (default ~/.courses/settings.json)")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(NewListCmd(app))
	cmd.AddCommand(NewGetCmd(app))
	cmd.AddCommand(NewCreateCmd(app))
	cmd.AddCommand(NewUpdateCmd(app))
	cmd.AddCommand(NewDeleteCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// client создаёт API-клиент для текущего адреса сервера.
func (a *App) client() *api.Client {
	return NewAPIClient(a.ServerURL, a.Insecure)
}

// credentials собирает email и пароль для запроса на запись.
func (a *App) credentials(cmd *cobra.Command) (api.Credentials, error) {
	email := strings.TrimSpace(a.Email)
	if email == "" {
		return api.Credentials{}, errors.New("email is required: pass --email")
	}

	password := a.Password
	if password == "" {
		pw, err := ReadPassword(cmd, a.PasswordStdin)
		if err != nil {
			return api.Credentials{}, err
		}
		password = pw
	}

	return api.Credentials{Email: email, Password: password}, nil
}

// remember сохраняет адрес сервера и email после успешного запроса.
func (a *App) remember(email string) error {
	if a.Settings == nil {
		a.Settings = &config.Settings{}
	}
	a.Settings.Server = a.ServerURL
	a.Settings.Email = email
	return config.Save(a.SettingsPath, a.Settings)
}
