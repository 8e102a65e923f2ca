// Command bridge-token mints a bearer token for a chat bridge process.
//
// Flags:
//
//	--name  bridge name recorded in the token subject (required)
//
// The token is printed to stdout. Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/wordtrainer/internal/auth"
	"github.com/heartmarshall/wordtrainer/internal/config"
)

func main() {
	nameFlag := flag.String("name", "", "bridge name")
	flag.Parse()

	if *nameFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	tokens := auth.NewJWTManager(cfg.Auth.BridgeSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	token, err := tokens.GenerateBridgeToken(*nameFlag)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
