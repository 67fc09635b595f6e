package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	gnip "github.com/gnip/gnip-go"
	"github.com/gnip/gnip-go/internal/logger"
)

var (
	serviceURL     string
	username       string
	password       string
	format         string
	timeCorrection time.Duration
	debug          bool
	requestTimeout time.Duration
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	cfg, err := gnip.LoadConfig()
	if err != nil {
		cfg = &gnip.Config{URL: gnip.DefaultBaseURL, Format: string(gnip.FormatXML)}
	}

	rootCmd := &cobra.Command{
		Use:           "gnipctl",
		Short:         "gnipctl manages Gnip publishers, filters and rules and reads activity buckets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logger.Install(logger.Console(os.Stderr), zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				logger.Install(logger.New("gnipctl", os.Stderr), zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&serviceURL, "url", cfg.URL, "Base URL of the Gnip service (GNIP_URL)")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", cfg.Username, "Account name (GNIP_USERNAME)")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", cfg.Password, "Account password (GNIP_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&format, "format", cfg.Format, "Wire format: xml or json (GNIP_FORMAT)")
	rootCmd.PersistentFlags().DurationVar(&timeCorrection, "time-correction", cfg.TimeCorrection, "Offset added to local times before bucket addressing (GNIP_TIME_CORRECTION)")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 15*time.Second, "Deadline for each command's requests")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", cfg.Debug, "Enable verbose debug output, including HTTP dumps")

	rootCmd.AddCommand(newPublishersCmd())
	rootCmd.AddCommand(newFiltersCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newActivitiesCmd())
	rootCmd.AddCommand(newNotificationsCmd())
	rootCmd.AddCommand(newTimeCmd())

	return rootCmd
}

func newClient() (*gnip.Client, error) {
	return gnip.New(serviceURL, username, password,
		gnip.WithFormat(gnip.Format(format)),
		gnip.WithTimeCorrection(timeCorrection),
		gnip.WithDebugLogging(debug),
		gnip.WithUserAgent("gnipctl"),
	)
}

func publisherFrom(scope, name string) gnip.Publisher {
	return gnip.NewPublisher(gnip.PublisherType(scope), name)
}

// parseRule reads "type:value" or "type:value:tag".
func parseRule(s string) (gnip.Rule, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return gnip.Rule{}, fmt.Errorf("rule %q must look like type:value[:tag]", s)
	}
	r := gnip.NewRule(gnip.RuleType(parts[0]), parts[1])
	if len(parts) == 3 {
		r.Tag = parts[2]
	}
	return r, nil
}

func parseRules(specs []string) ([]gnip.Rule, error) {
	rules := make([]gnip.Rule, 0, len(specs))
	for _, s := range specs {
		r, err := parseRule(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// parseAt accepts RFC 3339 or the bucket token format; empty means latest.
func parseAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	a, err := gnip.ParseBucket(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q is neither RFC 3339 nor a bucket token", s)
	}
	return a.Start(), nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(out io.Writer, r *gnip.Result) {
	if r == nil {
		fmt.Fprintln(out, "nothing to do")
		return
	}
	if r.Message == "" {
		fmt.Fprintln(out, "ok")
		return
	}
	fmt.Fprintln(out, r.Message)
}
