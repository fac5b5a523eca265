// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var (
	tokenSecret   string
	tokenLifetime time.Duration
)

// tokenCmd mints the same HS256 service-role token the server attaches to
// identity provider admin calls, for curl-level debugging.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a service-role token",
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now()
		claims := jwt.MapClaims{
			"role": "service_role",
			"iat":  now.Unix(),
			"exp":  now.Add(tokenLifetime).Unix(),
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tokenSecret))
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "HS256 signing secret (SERVICE_JWT_SECRET)")
	tokenCmd.Flags().DurationVar(&tokenLifetime, "lifetime", time.Hour, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("secret")
}
