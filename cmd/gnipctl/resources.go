package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	gnip "github.com/gnip/gnip-go"
)

func newPublishersCmd() *cobra.Command {
	var scope, name string
	var ruleTypes []string

	cmd := &cobra.Command{
		Use:   "publishers",
		Short: "Manage publishers",
	}
	cmd.PersistentFlags().StringVar(&scope, "scope", string(gnip.ScopeMy), "Publisher scope: my, public or gnip")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show one publisher",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			p, err := c.GetPublisher(ctx, gnip.PublisherType(scope), name)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	getCmd.Flags().StringVar(&name, "name", "", "Publisher name (required)")
	_ = getCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List publishers in a scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			ps, err := c.ListPublishers(ctx, gnip.PublisherType(scope))
			if err != nil {
				return err
			}
			for _, p := range ps {
				fmt.Fprintln(cmd.OutOrStdout(), p.Name)
			}
			return nil
		},
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a publisher",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			p := publisherFrom(scope, name)
			for _, rt := range ruleTypes {
				p.SupportedRuleTypes = append(p.SupportedRuleTypes, gnip.RuleType(rt))
			}
			res, err := c.CreatePublisher(ctx, p)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Publisher name (required)")
	createCmd.Flags().StringSliceVar(&ruleTypes, "rule-types", nil, "Supported rule types, e.g. actor,tag")
	_ = createCmd.MarkFlagRequired("name")

	cmd.AddCommand(getCmd, listCmd, createCmd)
	return cmd
}

// filterFlags are shared by every command addressing a filter.
type filterFlags struct {
	scope     string
	publisher string
	filter    string
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.scope, "scope", string(gnip.ScopeMy), "Publisher scope")
	cmd.PersistentFlags().StringVar(&f.publisher, "publisher", "", "Publisher name (required)")
	cmd.PersistentFlags().StringVar(&f.filter, "filter", "", "Filter name (required)")
	_ = cmd.MarkPersistentFlagRequired("publisher")
	_ = cmd.MarkPersistentFlagRequired("filter")
}

func newFiltersCmd() *cobra.Command {
	var ff filterFlags
	var fullData bool
	var postURL string
	var ruleSpecs []string

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Manage filters",
	}
	ff.bind(cmd)

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show a filter and its rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			f, err := c.GetFilter(ctx, publisherFrom(ff.scope, ff.publisher), gnip.FilterByName(ff.filter))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), f)
		},
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := parseRules(ruleSpecs)
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			f := gnip.NewFilter(ff.filter, fullData, rules...)
			f.PostURL = postURL
			res, err := c.CreateFilter(ctx, publisherFrom(ff.scope, ff.publisher), f)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	createCmd.Flags().BoolVar(&fullData, "full-data", false, "Deliver full activity payloads")
	createCmd.Flags().StringVar(&postURL, "post-url", "", "URL the service posts matching activities to")
	createCmd.Flags().StringArrayVar(&ruleSpecs, "rule", nil, "Rule as type:value[:tag]; repeatable")

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			res, err := c.DeleteFilter(ctx, publisherFrom(ff.scope, ff.publisher), gnip.FilterByName(ff.filter))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.AddCommand(getCmd, createCmd, deleteCmd)
	return cmd
}

func newRulesCmd() *cobra.Command {
	var ff filterFlags
	var ruleSpecs []string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Add or delete filter rules",
	}
	ff.bind(cmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add one or more rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := parseRules(ruleSpecs)
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			p := publisherFrom(ff.scope, ff.publisher)
			ref := gnip.FilterByName(ff.filter)
			var res *gnip.Result
			if len(rules) == 1 {
				res, err = c.AddRule(ctx, p, ref, rules[0])
			} else {
				res, err = c.AddRules(ctx, p, ref, gnip.NewRules(rules...))
			}
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	addCmd.Flags().StringArrayVar(&ruleSpecs, "rule", nil, "Rule as type:value[:tag]; repeatable")
	_ = addCmd.MarkFlagRequired("rule")

	var deleteSpec string
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a rule by type and value",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRule(deleteSpec)
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			res, err := c.DeleteRule(ctx, publisherFrom(ff.scope, ff.publisher), gnip.FilterByName(ff.filter), r)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteSpec, "rule", "", "Rule as type:value (required)")
	_ = deleteCmd.MarkFlagRequired("rule")

	cmd.AddCommand(addCmd, deleteCmd)
	return cmd
}

func newTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Inspect clock skew against the service",
	}
	deltaCmd := &cobra.Command{
		Use:   "delta",
		Short: "Estimate server time minus local time",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			start := time.Now()
			d, err := c.EstimateServerTimeDelta(ctx)
			if err != nil {
				return err
			}
			log.Debug().Dur("delta", d).Dur("elapsed", time.Since(start)).Msg("time delta completed")
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.AddCommand(deltaCmd)
	return cmd
}
