package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// Локальный запуск: сервер в фоне + сборка CLI-клиента courses.
func main() {
	fmt.Println("Запуск courses API...")

	clientName := "courses"
	if runtime.GOOS == "windows" {
		clientName = "courses.exe"
	}
	// запускаем сервер на фоне
	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)
	// собираем клиента, если его ещё нет
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/courses")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			fmt.Printf("Ошибка сборки клиента: %v\n", err)
		}
		if runtime.GOOS != "windows" {
			_ = os.Chmod(clientName, 0755)
		}
	}

	fmt.Println("Сервер запущен на http://localhost:5000")
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\courses.exe --help")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./courses --help")
	}

	_ = server.Wait()
}
