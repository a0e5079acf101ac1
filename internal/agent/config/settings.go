// Package config содержит функции для работы с локальной конфигурацией CLI-клиента.
//
// Конфигурация хранит адрес сервера и email последнего пользователя и размещается
// в домашней директории пользователя в файле:
//
//	~/.courses/settings.json
//
// Пароль в файл не пишется никогда: он запрашивается при каждом запросе на запись.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings содержит сохранённые настройки CLI-клиента.
type Settings struct {
	Server string `json:"server,omitempty"`
	Email  string `json:"email,omitempty"`
}

// DefaultPath возвращает путь к файлу настроек в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.courses/settings.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".courses", "settings.json"), nil
}

// Load загружает настройки из указанного файла.
//
// Если файл не существует, возвращает пустые настройки без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, err
	}
	var s Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save сохраняет настройки в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл записывается с правами 0600.
func Save(path string, s *Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
