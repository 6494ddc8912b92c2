package cmd

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/spf13/cobra"
)

func parseUint32(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return uint32(v), nil
}

// paginationFlags registers the page flags of a list command. The returned
// function yields nil unless one of the flags was set, so the querier's
// default page request applies.
func paginationFlags(cmd *cobra.Command) func() (*query.PageRequest, error) {
	var (
		key        string
		offset     uint64
		limit      uint64
		countTotal bool
		reverse    bool
	)
	flags := cmd.Flags()
	flags.StringVar(&key, "page-key", "", "base64 encoded key of the page to start at")
	flags.Uint64Var(&offset, "offset", 0, "number of entries to skip")
	flags.Uint64Var(&limit, "limit", 0, "maximum number of entries to return")
	flags.BoolVar(&countTotal, "count-total", false, "count the total number of entries")
	flags.BoolVar(&reverse, "reverse", false, "return entries in descending order")

	return func() (*query.PageRequest, error) {
		if !flags.Changed("page-key") && !flags.Changed("offset") && !flags.Changed("limit") &&
			!flags.Changed("count-total") && !flags.Changed("reverse") {
			return nil, nil
		}
		var keyBz []byte
		if key != "" {
			var err error
			if keyBz, err = base64.StdEncoding.DecodeString(key); err != nil {
				return nil, fmt.Errorf("failed to parse page-key: %w", err)
			}
		}
		return &query.PageRequest{
			Key:        keyBz,
			Offset:     offset,
			Limit:      limit,
			CountTotal: countTotal,
			Reverse:    reverse,
		}, nil
	}
}
