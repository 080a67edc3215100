package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldtchat/veldt/internal/directory"
	"github.com/veldtchat/veldt/pkg/narrow"
)

func linkCmd() *cobra.Command {
	var (
		snapshotPath string
		filterSpecs  []string
		near         int64
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Build a narrow link from filter specs",
		Long: `Build a narrow link from filter specs.

Each --filter is <operator>:<operand>, negated with a leading "-":
  --filter stream:48 --filter topic:release planning
  --filter dm:5,6,7 --filter -id:12345
Filters are serialized in the order given.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			snap, err := directory.Load(snapshotPath)
			if err != nil {
				return err
			}

			expr := make(narrow.Expression, 0, len(filterSpecs))
			for _, spec := range filterSpecs {
				f, err := parseFilter(spec)
				if err != nil {
					return err
				}
				expr = append(expr, f)
			}

			expr = expr.Resolve(snap.Realm.CapabilityLevel)
			fmt.Println(narrow.Link(snap.Realm, snap.Streams, expr, near))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "realm snapshot YAML file (required)")
	cmd.Flags().StringArrayVar(&filterSpecs, "filter", nil, "filter spec, repeatable")
	cmd.Flags().Int64Var(&near, "near", 0, "anchor message id")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}

// parseFilter parses "<operator>:<operand>" with an optional leading
// "-" for negation.
func parseFilter(spec string) (narrow.Filter, error) {
	negated := strings.HasPrefix(spec, "-")
	operator, operand, ok := strings.Cut(strings.TrimPrefix(spec, "-"), ":")
	if !ok {
		return nil, fmt.Errorf("filter %q: want <operator>:<operand>", spec)
	}

	switch operator {
	case "stream":
		id, err := strconv.ParseInt(operand, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("filter %q: stream id: %w", spec, err)
		}
		return narrow.Stream{StreamID: id, Negated: negated}, nil
	case "topic":
		return narrow.Topic{Name: operand, Negated: negated}, nil
	case "dm":
		ids, err := parseIDList(operand)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", spec, err)
		}
		return narrow.DirectUnresolved{UserIDs: ids, Negated: negated}, nil
	case "id":
		id, err := strconv.ParseInt(operand, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("filter %q: message id: %w", spec, err)
		}
		return narrow.MessageID{ID: id, Negated: negated}, nil
	default:
		return nil, fmt.Errorf("filter %q: unknown operator %q", spec, operator)
	}
}

func parseIDList(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("user id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
