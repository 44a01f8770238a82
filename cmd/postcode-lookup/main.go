// Command postcode-lookup resolves a Dutch postcode and house number from
// the command line. The API token is read from the POSTCODE_API_TOKEN
// environment variable; a .env file in the working directory is loaded if
// present.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	postcodenl "github.com/avsaase/postcode-nl"
)

func main() {
	var (
		postcode = flag.String("postcode", "", "postcode to look up, e.g. 1012RJ or \"1012 RJ\"")
		number   = flag.Uint("number", 0, "house number")
		full     = flag.Bool("full", false, "include municipality, province and coordinates")
		timeout  = flag.Duration("timeout", 10*time.Second, "request timeout")
	)
	flag.Parse()

	if *postcode == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Load .env if it exists (won't error if missing)
	_ = godotenv.Load()

	token := os.Getenv("POSTCODE_API_TOKEN")
	if token == "" {
		log.Fatal("POSTCODE_API_TOKEN environment variable is required")
	}

	client, err := postcodenl.New(token)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *full {
		lookupFull(ctx, client, *postcode, uint32(*number))
	} else {
		lookupSimple(ctx, client, *postcode, uint32(*number))
	}
}

func lookupSimple(ctx context.Context, client *postcodenl.Client, postcode string, number uint32) {
	address, limits, err := client.GetAddress(ctx, postcode, number)
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}
	if address == nil {
		fmt.Printf("No address found for %s %d\n", postcode, number)
		printLimits(limits)
		return
	}

	fmt.Printf("%s %d\n%s %s\n", address.Street, address.HouseNumber, address.Postcode, address.City)
	printLimits(limits)
}

func lookupFull(ctx context.Context, client *postcodenl.Client, postcode string, number uint32) {
	address, limits, err := client.GetExtendedAddress(ctx, postcode, number)
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}
	if address == nil {
		fmt.Printf("No address found for %s %d\n", postcode, number)
		printLimits(limits)
		return
	}

	fmt.Printf("%s %d\n%s %s\n", address.Street, address.HouseNumber, address.Postcode, address.City)
	fmt.Printf("Municipality: %s\n", address.Municipality)
	fmt.Printf("Province: %s\n", address.Province)
	fmt.Printf("Coordinates: %.6f, %.6f\n", address.Coordinates.Lat, address.Coordinates.Lon)
	printLimits(limits)
}

func printLimits(limits *postcodenl.APILimits) {
	fmt.Printf("\nRate limit: %d/%d remaining, daily: %d/%d remaining (resets %s)\n",
		limits.RatelimitRemaining, limits.RatelimitLimit,
		limits.APIRemaining, limits.APILimit,
		limits.APIReset)
}
