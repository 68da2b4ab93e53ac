// Command tokengen signs and inspects questionnaire launch tokens for local testing.
// Tokens use the dev signing key unless -key is given and will NOT work in production.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"contactcentre/internal/cases/models"
	"contactcentre/internal/launch/token"
	"contactcentre/pkg/domain"
)

const (
	// Matches config.go when LAUNCH_SIGNING_KEY is not set.
	devSigningKey = "dev-launch-key-change-in-production"
	defaultIssuer = "contact-centre"
	defaultTTL    = 5 * time.Minute
)

func main() {
	signCmd := flag.NewFlagSet("sign", flag.ExitOnError)
	signCaseID := signCmd.String("case-id", "", "Case ID (UUID). Generated if empty.")
	signCaseType := signCmd.String("case-type", "HH", "Case type: HH, HI, CE or SPG")
	signQID := signCmd.String("qid", "0130000000000300", "Questionnaire ID")
	signFormType := signCmd.String("form-type", "H", "Form type")
	signAgent := signCmd.String("agent-id", "12345", "Agent ID")
	signRegion := signCmd.String("region", "E1000", "Region code")
	signKey := signCmd.String("key", devSigningKey, "HS256 signing key")
	signTTL := signCmd.Duration("ttl", defaultTTL, "Token time-to-live")

	inspectCmd := flag.NewFlagSet("inspect", flag.ExitOnError)
	inspectKey := inspectCmd.String("key", devSigningKey, "HS256 signing key")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "sign":
		_ = signCmd.Parse(os.Args[2:])
		sign(*signCaseID, *signCaseType, *signQID, *signFormType, *signAgent, *signRegion, *signKey, *signTTL)
	case "inspect":
		_ = inspectCmd.Parse(os.Args[2:])
		if inspectCmd.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "inspect expects exactly one token")
			os.Exit(1)
		}
		inspect(inspectCmd.Arg(0), *inspectKey)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tokengen - sign and inspect questionnaire launch tokens

Usage:
  tokengen <command> [flags]

Commands:
  sign      Sign a launch token for a case
  inspect   Verify a token and print its claims

Examples:
  tokengen sign -case-type HI -form-type I
  tokengen inspect eyJhbGciOi...`)
}

func sign(caseID, caseType, qid, formType, agentID, region, key string, ttl time.Duration) {
	id := domain.NewCaseID()
	if caseID != "" {
		parsed, err := domain.ParseCaseID(caseID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -case-id: %v\n", err)
			os.Exit(1)
		}
		id = parsed
	}

	issuer := token.NewIssuer(key, defaultIssuer, ttl)
	signed, err := issuer.IssueLaunchToken(context.Background(), models.LaunchTokenRequest{
		Language:        "en",
		Source:          models.EventSource,
		Channel:         models.EventChannel,
		Case:            &models.Case{ID: id, CaseType: models.ParseCaseType(caseType), RegionCode: region},
		AgentID:         agentID,
		QuestionnaireID: qid,
		FormType:        formType,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(signed)
}

func inspect(tokenString, key string) {
	claims, err := token.NewIssuer(key, defaultIssuer, defaultTTL).Parse(tokenString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect token: %v\n", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(claims)
}
