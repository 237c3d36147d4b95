package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/wpcellgap-cmyk/stock/internal/config"
	"github.com/wpcellgap-cmyk/stock/internal/router"
	"github.com/wpcellgap-cmyk/stock/internal/store"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(cfg.Export.Dir); err != nil {
		log.Fatalf("create export dir: %v", err)
	}
	if err := ensureDir(cfg.Import.UploadDir); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	// open storage (runs migrations and first-run seeding)
	st, err := store.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	// setup router
	r := router.SetupRouter(cfg, st)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
