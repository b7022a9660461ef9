// Command cli is a developer tool for poking the provider API
// directly: it creates, fetches, and expires checkout sessions without
// going through the gateway.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/paygate-app/paygate/pkg/config"
	"github.com/paygate-app/paygate/pkg/currency"
	"github.com/paygate-app/paygate/pkg/stripeapi"
	"golang.org/x/term"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: create <name> <amount> <currency>, get <session_id>, expire <session_id>")
		return
	}
	cmd := os.Args[1]

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		return
	}
	stripeCfg := cfg.PaymentProviders.Stripe
	if stripeCfg.ApiKey == "" {
		key, err := promptAPIKey()
		if err != nil {
			fmt.Println("Failed to read API key:", err)
			return
		}
		stripeCfg.ApiKey = key
	}

	client := stripeapi.New(stripeCfg, slog.Default())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {
	case "create":
		if argsLen < 5 {
			fmt.Println("Usage: create <name> <amount> <currency>")
			return
		}
		name := os.Args[2]
		amount, err := strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil {
			fmt.Println("Invalid amount:", err)
			return
		}
		mode := stripeapi.CheckoutSessionModePayment
		session, err := client.CreateCheckoutSession(ctx, &stripeapi.CheckoutSessionParams{
			CancelURL:          cfg.BaseURL + stripeCfg.CancelPath,
			SuccessURL:         cfg.BaseURL + stripeCfg.SuccessPath,
			PaymentMethodTypes: []string{"card"},
			Mode:               &mode,
			LineItems: []*stripeapi.CheckoutSessionLineItemParams{
				{
					Quantity: 1,
					PriceData: &stripeapi.PriceDataParams{
						UnitAmount:  amount,
						Currency:    strings.ToLower(os.Args[4]),
						ProductData: &stripeapi.ProductDataParams{Name: name},
					},
				},
			},
		})
		if err != nil {
			fmt.Println("Error creating session:", err)
			return
		}
		color.Green("Session created: %s", session.ID)
		fmt.Println("Checkout URL:", color.CyanString(session.URL))
	case "get":
		if argsLen < 3 {
			fmt.Println("Usage: get <session_id>")
			return
		}
		session, err := client.GetCheckoutSession(ctx, os.Args[2])
		if err != nil {
			fmt.Println("Error fetching session:", err)
			return
		}
		printSession(session)
	case "expire":
		if argsLen < 3 {
			fmt.Println("Usage: expire <session_id>")
			return
		}
		session, err := client.ExpireCheckoutSession(ctx, os.Args[2])
		if err != nil {
			fmt.Println("Error expiring session:", err)
			return
		}
		color.Yellow("Session %s is now %s", session.ID, session.Status)
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

// formatAmount renders a minor-unit amount with the currency's
// decimal places, e.g. 1500 -> "15.00" for USD but "1500" for JPY.
// Negative amounts (refund-style) carry a single leading sign.
func formatAmount(amount int64, code string) string {
	decimals := currency.Decimals(code)
	if decimals == 0 {
		return strconv.FormatInt(amount, 10)
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	divisor := int64(1)
	for i := 0; i < decimals; i++ {
		divisor *= 10
	}
	return fmt.Sprintf("%s%d.%0*d", sign, amount/divisor, decimals, amount%divisor)
}

func promptAPIKey() (string, error) {
	fmt.Print("Provider API key: ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(key)), nil
}

func printSession(session *stripeapi.CheckoutSession) {
	fmt.Printf("ID:             %s\n", session.ID)
	fmt.Printf("Status:         %s\n", session.Status)
	fmt.Printf("Payment status: %s\n", session.PaymentStatus)
	if session.AmountTotal != 0 {
		fmt.Printf("Amount:         %s %s\n",
			formatAmount(session.AmountTotal, session.Currency),
			strings.ToUpper(session.Currency),
		)
	}
	if session.URL != "" {
		fmt.Println("Checkout URL:  ", color.CyanString(session.URL))
	}
}
