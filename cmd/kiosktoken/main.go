package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/frontdesk/pkg/auth"
)

var Version = "dev"

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kiosktoken",
		Short:   "Issue bearer tokens for front desk kiosks",
		Version: Version,
	}
	cmd.AddCommand(issueCmd(out), verifyCmd(out))
	return cmd
}

func issueCmd(out io.Writer) *cobra.Command {
	var (
		ttl    time.Duration
		secret string
	)
	cmd := &cobra.Command{
		Use:   "issue [kiosk-id]",
		Short: "Sign a token for the given kiosk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return fmt.Errorf("signing secret is empty, set --secret or KIOSK_JWT_SECRET")
			}
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive, got %s", ttl)
			}
			token, err := auth.NewJWTService(secret).GenerateJWT(args[0], time.Now().Add(ttl))
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(out, token)
			return nil
		},
	}
	cmd.Flags().DurationVarP(&ttl, "ttl", "t", 24*time.Hour*365, "Token lifetime")
	cmd.Flags().StringVarP(&secret, "secret", "s", os.Getenv("KIOSK_JWT_SECRET"), "Signing secret")
	return cmd
}

func verifyCmd(out io.Writer) *cobra.Command {
	var secret string
	cmd := &cobra.Command{
		Use:   "verify [token]",
		Short: "Check a token and print the kiosk it was issued to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			claims, err := auth.NewJWTService(secret).ValidateToken(args[0])
			if err != nil {
				return fmt.Errorf("invalid token: %w", err)
			}
			fmt.Fprintf(out, "kiosk: %s\n", claims.KioskID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&secret, "secret", "s", os.Getenv("KIOSK_JWT_SECRET"), "Signing secret")
	return cmd
}
