package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matheus3301/dmsync/internal/api"
	"github.com/matheus3301/dmsync/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sendCmd, editCmd, deleteCmd, historyCmd, readCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send <to> <text...>",
	Short: "Send a message",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(true, func(ctx context.Context, c *api.Client) error {
			m, err := c.Send(ctx, args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			printMessage(m)
			return nil
		})
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <message-id> <text...>",
	Short: "Edit one of your messages",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(true, func(ctx context.Context, c *api.Client) error {
			m, err := c.Edit(ctx, args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			printMessage(m)
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <message-id>",
	Short: "Delete one of your messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(true, func(ctx context.Context, c *api.Client) error {
			m, err := c.Delete(ctx, args[0])
			if err != nil {
				return err
			}
			if jsonFlag {
				outputJSON(m)
				return nil
			}
			fmt.Printf("Deleted %s\n", m.ID)
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <counterpart>",
	Short: "Print the conversation with a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(true, func(ctx context.Context, c *api.Client) error {
			msgs, err := c.History(ctx, args[0])
			if err != nil {
				return err
			}
			if jsonFlag {
				outputJSON(msgs)
				return nil
			}
			printMessages(msgs)
			return nil
		})
	},
}

var readCmd = &cobra.Command{
	Use:   "read <counterpart>",
	Short: "Mark the conversation with a user as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(true, func(ctx context.Context, c *api.Client) error {
			return c.MarkRead(ctx, args[0])
		})
	},
}

func printMessage(m *store.Message) {
	if jsonFlag {
		outputJSON(m)
		return
	}
	printMessages([]store.Message{*m})
}

func printMessages(msgs []store.Message) {
	if len(msgs) == 0 {
		fmt.Println("No messages.")
		return
	}
	for _, m := range msgs {
		edited := ""
		if m.Edited {
			edited = " (edited)"
		}
		ts := time.UnixMilli(m.Timestamp).Format("2006-01-02 15:04:05")
		fmt.Printf("%s  %-12s %s%s  [%s]\n", ts, m.SenderName, m.Content, edited, m.ID)
	}
}
