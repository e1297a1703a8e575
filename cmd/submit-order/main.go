package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/backend"
	"github.com/medsupply/orderflow/internal/config"
	"github.com/medsupply/orderflow/internal/domain"
	"github.com/medsupply/orderflow/internal/service"
)

func main() {
	if len(os.Args) < 6 {
		fmt.Println("Usage: go run cmd/submit-order/main.go <token> <role> <center-id> <delivery-date> <product-id=qty> [<product-id=qty> ...]")
		fmt.Println("Example: go run cmd/submit-order/main.go \"api-token\" commercial:client-42 dc-7 2026-09-15 prod-1=2 prod-9=1")
		fmt.Println("Role is \"institutional\" or \"commercial:<client-id>\".")
		os.Exit(1)
	}

	token := os.Args[1]
	roleArg := os.Args[2]
	centerID := os.Args[3]
	dateArg := os.Args[4]
	itemArgs := os.Args[5:]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	role := domain.ParseRole(roleArg)
	var clientID string
	if parts := strings.SplitN(roleArg, ":", 2); len(parts) == 2 {
		role = domain.ParseRole(parts[0])
		clientID = parts[1]
	}

	date, err := time.Parse("2006-01-02", dateArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid delivery date %q, want YYYY-MM-DD\n", dateArg)
		os.Exit(1)
	}

	apiClient := backend.NewClient(cfg.Backend, logger)

	products, err := apiClient.ListProducts(context.Background(), token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch catalog: %v\n", err)
		os.Exit(1)
	}

	composer := service.NewComposer(role, products, apiClient, cfg.Backend.Timeout, logger)
	composer.SetCenter(centerID)
	composer.SetDeliveryDate(date)
	if clientID != "" {
		composer.SetClient(clientID)
	}

	for _, arg := range itemArgs {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			fmt.Fprintf(os.Stderr, "Invalid item %q, want <product-id>=<qty>\n", arg)
			os.Exit(1)
		}
		qty, err := strconv.Atoi(parts[1])
		if err != nil || qty <= 0 {
			fmt.Fprintf(os.Stderr, "Invalid quantity in %q\n", arg)
			os.Exit(1)
		}
		for i := 0; i < qty; i++ {
			composer.Increment(parts[0])
		}
	}

	summary := composer.Summary()
	fmt.Printf("Order summary:\n")
	for _, item := range summary.Items {
		fmt.Printf("  %s x%d  %s\n", item.Name, item.Quantity, item.LineTotal.StringFixed(2))
	}
	fmt.Printf("Grand total: %s\n\n", summary.GrandTotal.StringFixed(2))

	result := make(chan service.SubmitState, 1)
	composer.Subscribe(func(s service.SubmitState) {
		if !s.Loading {
			result <- s
		}
	})

	if err := composer.Submit(token, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Order not submittable: %v\n", err)
		os.Exit(1)
	}

	state := <-result
	if state.OrderCreated {
		fmt.Printf("Order created: %s\n", state.OrderID)
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n", state.ErrorMessage)
	os.Exit(1)
}
