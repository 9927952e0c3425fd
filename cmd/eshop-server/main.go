package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"eshop-chatbot/internal/catalog"
	"eshop-chatbot/internal/config"
	"eshop-chatbot/internal/dialog"
	"eshop-chatbot/internal/server"
)

func main() {
	cfg := config.Load()

	// Catalog problems are configuration errors: refuse to serve.
	var cat *catalog.Catalog
	var err error
	if cfg.CatalogFile != "" {
		cat, err = catalog.Load(cfg.CatalogFile)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		log.Fatalf("invalid catalog configuration: %v", err)
	}

	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := dialog.NewEngine(cat, rand.New(rand.NewSource(seed)))

	s := server.NewServer(cfg, engine)
	addr := ":" + cfg.Port
	fmt.Printf("EShop chat server listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, s.Router()))
}
