package main

import (
	"context"
	"log"

	"github.com/Sonali1020/order-pulse-commerce/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("api exited: %v", err)
	}
}
