package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/ayusman/shouzhi/internal/app"
	"github.com/ayusman/shouzhi/internal/config"
	"github.com/ayusman/shouzhi/internal/gesture"
	"github.com/ayusman/shouzhi/internal/server"
	"github.com/ayusman/shouzhi/internal/store"
	"github.com/ayusman/shouzhi/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.shouzhi/config.yaml)")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	cameraID := flag.Int("camera", -1, "camera device id (overrides config)")
	useTray := flag.Bool("tray", false, "run with a system tray icon")
	flag.Parse()

	fmt.Println("Shouzhi - Hand Gesture Number Recognition")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".shouzhi")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	if *configPath == "" {
		*configPath = filepath.Join(dataDir, "config.yaml")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *cameraID >= 0 {
		cfg.Camera.ID = *cameraID
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "shouzhi.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	a := app.New(cfg, st)
	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer a.Stop()

	webDir := cfg.Server.StaticDir
	if webDir == "" {
		webDir = findWebDir(dataDir)
	}
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir:  webDir,
		Store:      st,
		Camera:     a.Camera(),
		Detector:   a.Detector(),
		Cell:       a.Cell(),
		Controller: a,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Server.Addr)
		if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if *useTray {
		runTray(a, cfg.Server.Addr)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	fmt.Println("Shutting down")
}

// runTray blocks in the system tray loop, mirroring pipeline state into
// the menu.
func runTray(a *app.App, addr string) {
	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnSettings(func() {
		openBrowser("http://localhost" + addr)
	})
	t.OnQuit(func() {
		a.Stop()
	})

	a.OnConfirmed = func(snap gesture.Snapshot) {
		t.SetLastGesture(snap.Name)
	}

	t.Run()
}

// openBrowser opens the dashboard URL with the platform opener.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
func findWebDir(dataDir string) string {
	candidates := []string{"web", "../web", "../../web", filepath.Join(dataDir, "web")}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if absPath, err := filepath.Abs(p); err == nil {
				return absPath
			}
			return p
		}
	}
	return ""
}
