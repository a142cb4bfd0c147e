package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkreuzer/roadforge/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the extraction and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheInfoCommand())

	return cmd
}

// fileCache opens the configured cache and requires the file backend.
// Redis and disabled backends have nothing to manage locally.
func (c *CLI) fileCache(ctx context.Context) (*cache.FileCache, error) {
	store, err := c.newCache(ctx, false)
	if err != nil {
		return nil, err
	}
	fc, ok := store.(*cache.FileCache)
	if !ok {
		store.Close()
		return nil, fmt.Errorf("cache backend is not file-based; manage it where it lives")
	}
	return fc, nil
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached extraction results and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.fileCache(cmd.Context())
			if err != nil {
				return err
			}
			defer fc.Close()

			count, err := fc.Purge()
			if err != nil {
				return fmt.Errorf("purge cache: %w", err)
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.fileCache(cmd.Context())
			if err != nil {
				return err
			}
			defer fc.Close()
			fmt.Println(fc.Dir())
			return nil
		},
	}
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache entry count and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.fileCache(cmd.Context())
			if err != nil {
				return err
			}
			defer fc.Close()

			entries, bytes, err := fc.Stats()
			if err != nil {
				return fmt.Errorf("read cache stats: %w", err)
			}
			printKeyValue("Directory", fc.Dir())
			printKeyValue("Entries", fmt.Sprintf("%d", entries))
			printKeyValue("Size", formatBytes(bytes))
			return nil
		},
	}
}

// formatBytes renders a byte count with a human-readable unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
