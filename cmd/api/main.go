package main

import (
	"context"
	"log"

	apiapp "github.com/Apurer/pet-name-generator/internal/app/api"
)

func main() {
	if err := apiapp.Run(context.Background()); err != nil {
		log.Fatalf("pet name API exited: %v", err)
	}
}
