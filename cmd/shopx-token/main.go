// Command shopx-token mints a bearer token for the shopx API.
//
//	PASETO_KEY=<hex> shopx-token -customer <uuid> -role admin
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MikeRez0/shopx/internal/adapter/auth"
	"github.com/MikeRez0/shopx/internal/adapter/config"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/caarlos0/env/v6"
	"github.com/google/uuid"
)

func main() {
	var conf config.Auth
	err := env.Parse(&conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing auth config: %s\n", err)
		os.Exit(1)
	}
	if conf.KeyHex == "" {
		fmt.Fprintln(os.Stderr, "PASETO_KEY is required")
		os.Exit(1)
	}

	customer := flag.String("customer", "", "customer id, random when empty")
	role := flag.String("role", string(domain.RoleCustomer), "customer / seller / admin")
	flag.Parse()

	customerID := uuid.New()
	if *customer != "" {
		customerID, err = uuid.Parse(*customer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid customer id: %s\n", err)
			os.Exit(1)
		}
	}

	r := domain.Role(*role)
	switch r {
	case domain.RoleCustomer, domain.RoleSeller, domain.RoleAdmin:
	default:
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(1)
	}

	tokens, err := auth.New(&conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	token, err := tokens.CreateToken(&port.TokenPayload{CustomerID: customerID, Role: r})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
