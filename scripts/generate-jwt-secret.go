package main

import (
	"fmt"
	"os"

	"auditplay/internal/auth"
)

func main() {
	// 32 random bytes, hex encoded: enough entropy for HMAC-SHA256
	secret, err := auth.GenerateRandomToken(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate secret: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generated signing secret for JWT tokens.")
	fmt.Println("\nAdd this to your .env file:")
	fmt.Println("----------------------------------------")
	fmt.Printf("JWT_SECRET=%s\n", secret)
	fmt.Println("\nOr store it in Vault:")
	fmt.Println("----------------------------------------")
	fmt.Printf("vault kv put secret/auditplay/api jwt_secret=%s\n", secret)
}
