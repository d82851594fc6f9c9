// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	_ "github.com/itsatony/sensormgmt/docs"
	"github.com/itsatony/sensormgmt/internal/config"
	"github.com/itsatony/sensormgmt/internal/server"
	nuts "github.com/vaudience/go-nuts"
)

// @title Sensor Management API
// @version 1.0.0
// @description CRUD service for units, sensors and sensor readings.
// @BasePath /api/v1
func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting Sensor Management Server v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"   _____                            __  ___                 __",
		"  / ___/___  ____  _________  _____/  |/  /___ _____ ___  / /_",
		"  \\__ \\/ _ \\/ __ \\/ ___/ __ \\/ ___/ /|_/ / __ `/ __ `__ \\/ __/",
		" ___/ /  __/ / / (__  ) /_/ / /  / /  / / /_/ / / / / / / /_",
		"/____/\\___/_/ /_/____/\\____/_/  /_/  /_/\\__, /_/ /_/ /_/\\__/",
		"......................................../____/  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
