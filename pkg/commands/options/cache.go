package options

import "github.com/spf13/cobra"

// CacheOptions lets read views skip the appliance and use the local cache.
type CacheOptions struct {
	Cached bool
}

func AddCachedArg(cmd *cobra.Command, o *CacheOptions) {
	cmd.Flags().BoolVar(&o.Cached, "cached", false,
		"Use the locally cached schedule instead of asking the appliance.")
}
