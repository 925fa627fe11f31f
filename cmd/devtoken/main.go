// Command devtoken prints a user token and a service token signed with the
// configured secrets, for calling a local draftstore with curl.
//
// Usage:
//
//	devtoken -user 42 -service probate
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/heartmarshall/draftstore-backend/internal/auth"
	"github.com/heartmarshall/draftstore-backend/internal/config"
)

func main() {
	user := flag.String("user", "", "user id placed in the user token subject")
	service := flag.String("service", "", "service name placed in the service token subject")
	flag.Parse()

	if *user == "" || *service == "" {
		log.Fatal("both -user and -service are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	users := auth.NewTokenManager(cfg.Auth.UserTokenSecret, cfg.Auth.UserTokenIssuer, cfg.Auth.TokenTTL)
	services := auth.NewTokenManager(cfg.Auth.ServiceTokenSecret, cfg.Auth.ServiceTokenIssuer, cfg.Auth.TokenTTL)

	userToken, err := users.Issue(*user)
	if err != nil {
		log.Fatalf("issue user token: %v", err)
	}
	serviceToken, err := services.Issue(*service)
	if err != nil {
		log.Fatalf("issue service token: %v", err)
	}

	fmt.Printf("Authorization: Bearer %s\n", userToken)
	fmt.Printf("ServiceAuthorization: Bearer %s\n", serviceToken)
}
