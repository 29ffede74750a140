package main

import (
	"context"
	"fmt"
	"time"

	"civic/internal/config"
	"civic/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// signToken mints an RS256 token for subject, valid from now for ttl. The
// subject must be a user UUID because the API rejects anything else.
func signToken(privateKeyPEM, subject string, ttl time.Duration, now time.Time) (string, error) {
	if _, err := uuid.Parse(subject); err != nil {
		return "", fmt.Errorf("subject must be a UUID: %w", err)
	}
	if ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive, got %s", ttl)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// JWTCommand constructs the 'jwt' subcommand that prints a bearer token for
// the v1 API, signed with the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if subject == "" {
				subject = uuid.NewString()
			}

			signed, err := signToken(cfg.JWT.PrivateKey, subject, ttl, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not generate token", zap.Error(err))
			}

			logger.Debug(ctx, "signed token", zap.String("subject", subject), zap.Duration("ttl", ttl))
			fmt.Fprintln(cmd.OutOrStdout(), signed)
		},
	}

	cmd.Flags().String("subject", "", "JWT subject, a user UUID (random when empty)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}
