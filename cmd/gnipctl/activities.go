package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	gnip "github.com/gnip/gnip-go"
)

// streamFlags select a publisher, an optional filter and a bucket.
type streamFlags struct {
	scope     string
	publisher string
	filter    string
	at        string
	estimate  bool
}

func (f *streamFlags) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.scope, "scope", string(gnip.ScopeMy), "Publisher scope")
	cmd.PersistentFlags().StringVar(&f.publisher, "publisher", "", "Publisher name (required)")
	cmd.PersistentFlags().StringVar(&f.filter, "filter", "", "Restrict to one filter")
	cmd.PersistentFlags().StringVar(&f.at, "at", "", "Bucket time, RFC 3339 or YYYYMMDDhhmm; empty reads the latest bucket")
	cmd.PersistentFlags().BoolVar(&f.estimate, "estimate-correction", false, "Measure clock skew first and use it as the time correction")
	_ = cmd.MarkPersistentFlagRequired("publisher")
}

func (f *streamFlags) query() (gnip.ActivityQuery, error) {
	at, err := parseAt(f.at)
	if err != nil {
		return gnip.ActivityQuery{}, err
	}
	q := gnip.ActivityQuery{At: at}
	if f.filter != "" {
		q.Filter = gnip.FilterByName(f.filter)
	}
	return q, nil
}

// streamClient builds a client, optionally replacing its correction with a
// fresh estimate.
func (f *streamFlags) streamClient(ctx context.Context) (*gnip.Client, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}
	if !f.estimate {
		return c, nil
	}
	d, err := c.EstimateServerTimeDelta(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().Dur("correction", d).Msg("using estimated time correction")
	return c.WithTimeCorrection(d), nil
}

type readFunc func(*gnip.Client, context.Context, gnip.Publisher, gnip.ActivityQuery) (*gnip.Activities, error)

func newStreamGetCmd(short string, read readFunc, sf *streamFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := sf.query()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, err := sf.streamClient(ctx)
			if err != nil {
				return err
			}
			log.Debug().Str("publisher", sf.publisher).Str("bucket", c.Bucket(q.At).String()).Msg("reading bucket")
			acts, err := read(c, ctx, publisherFrom(sf.scope, sf.publisher), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), acts)
		},
	}
}

func newActivitiesCmd() *cobra.Command {
	var sf streamFlags
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Read activity buckets",
	}
	sf.bind(cmd)

	var count int
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Read consecutive buckets as they close, starting at --at (default: the current bucket)",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := sf.query()
			if err != nil {
				return err
			}
			c, err := sf.streamClient(cmd.Context())
			if err != nil {
				return err
			}
			return watch(cmd.Context(), c, publisherFrom(sf.scope, sf.publisher), q, count, cmd.OutOrStdout())
		},
	}
	watchCmd.Flags().IntVar(&count, "count", 0, "Stop after this many buckets; 0 runs until interrupted")

	cmd.AddCommand(newStreamGetCmd("Read one bucket of activities", (*gnip.Client).GetActivities, &sf), watchCmd)
	return cmd
}

func newNotificationsCmd() *cobra.Command {
	var sf streamFlags
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Read notification buckets",
	}
	sf.bind(cmd)
	cmd.AddCommand(newStreamGetCmd("Read one bucket of notifications", (*gnip.Client).GetNotifications, &sf))
	return cmd
}

// watch reads every closed bucket from q.At onwards, waking once per bucket
// width. Buckets the service no longer has are skipped.
func watch(ctx context.Context, c *gnip.Client, p gnip.Publisher, q gnip.ActivityQuery, count int, out io.Writer) error {
	start := q.At
	if start.IsZero() {
		start = c.Now()
	}
	next := c.Bucket(start)

	// Addresses are already corrected; do not correct them again.
	none := time.Duration(0)
	q.Correction = &none

	ticker := backoff.NewTicker(backoff.WithContext(backoff.NewConstantBackOff(gnip.BucketGranularity), ctx))
	defer ticker.Stop()

	read := 0
	for range ticker.C {
		current := c.Bucket(c.Now())
		for next.Start().Before(current.Start()) {
			q.At = next.Start()
			acts, err := c.GetActivities(ctx, p, q)
			switch {
			case gnip.IsNotFound(err):
				log.Warn().Str("bucket", next.String()).Msg("bucket not available, skipping")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "bucket %s: %d activities\n", next, acts.Len())
				for _, a := range acts.Activities {
					if err := printJSON(out, a); err != nil {
						return err
					}
				}
			}
			next = next.Next()
			read++
			if count > 0 && read >= count {
				return nil
			}
		}
	}
	return ctx.Err()
}
