package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morlord/builders-service/internal/config"
	"github.com/morlord/builders-service/internal/db"
)

// RevalidateCmd drops a cached analytics entry so the next read fetches fresh
// rows. Usage: ./builders-service revalidate 4567890 --config config.yml
func RevalidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revalidate [queryID]",
		Short: "Drop a cached analytics entry",
		Args:  cobra.ExactArgs(1),
		RunE:  revalidate,
	}

	return cmd
}

func revalidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return err
	}

	deleted, err := dbClient.DeleteAnalyticsCache(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %d cache entries for query %q\n", deleted, args[0])
	return nil
}
