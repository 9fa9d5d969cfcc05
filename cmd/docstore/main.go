package main

import (
	"log"

	"github.com/MrSnakeDoc/docstore/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ docstore failed to initialize: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ docstore failed: %v", err)
	}
}
