package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/matheus3301/dmsync/internal/api"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inboxCmd, unreadCmd, usersCmd, statusCmd)
}

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List conversations, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(true, func(ctx context.Context, c *api.Client) error {
			convs, err := c.Inbox(ctx)
			if err != nil {
				return err
			}
			if jsonFlag {
				outputJSON(convs)
				return nil
			}
			for _, s := range convs {
				last := "-"
				if s.LastMessage != nil {
					last = s.LastMessage.Content
				}
				fmt.Printf("%-20s %3d unread  %s\n", s.Counterpart.DisplayName, s.UnreadCount, last)
			}
			return nil
		})
	},
}

var unreadCmd = &cobra.Command{
	Use:   "unread [counterpart]",
	Short: "Show unread counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(true, func(ctx context.Context, c *api.Client) error {
			if len(args) == 1 {
				n, err := c.Unread(ctx, args[0])
				if err != nil {
					return err
				}
				if jsonFlag {
					outputJSON(map[string]int{args[0]: n})
					return nil
				}
				fmt.Println(n)
				return nil
			}
			counts, err := c.UnreadAll(ctx)
			if err != nil {
				return err
			}
			if jsonFlag {
				outputJSON(counts)
				return nil
			}
			ids := make([]string, 0, len(counts))
			for id := range counts {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Printf("%-20s %d\n", id, counts[id])
			}
			return nil
		})
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the roster",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(false, func(ctx context.Context, c *api.Client) error {
			users, err := c.Users(ctx)
			if err != nil {
				return err
			}
			if jsonFlag {
				outputJSON(users)
				return nil
			}
			for _, u := range users {
				fmt.Printf("%-20s %s\n", u.ID, u.DisplayName)
			}
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(false, func(ctx context.Context, c *api.Client) error {
			resp, err := c.GetStatus(ctx)
			if err != nil {
				return err
			}
			if jsonFlag {
				outputProto(resp)
				return nil
			}
			fmt.Printf("Instance:      %s\n", resp.Instance)
			fmt.Printf("Backend:       %s\n", resp.Backend)
			fmt.Printf("Status:        %s\n", resp.State)
			fmt.Printf("Uptime:        %dms\n", resp.UptimeMs)
			fmt.Printf("Subscriptions: %d\n", resp.ActiveSubscriptions)
			return nil
		})
	},
}
