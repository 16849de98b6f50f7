package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/matheus3301/dmsync/internal/api"
	"github.com/matheus3301/dmsync/internal/sync"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd, watchCmd, onlineCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <counterpart>",
	Short: "Open a conversation and follow it until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return follow(func(ctx context.Context, c *api.Client) (*api.SnapshotStream, error) {
			return c.Open(ctx, args[0])
		})
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch <namespace>",
	Short: "Follow a namespace: conv:<a|b>, unread:<user>, inbox:<user> or presence:<user>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ns, err := sync.ParseNamespace(args[0])
		if err != nil {
			return err
		}
		return follow(func(ctx context.Context, c *api.Client) (*api.SnapshotStream, error) {
			return c.Watch(ctx, ns)
		})
	},
}

var onlineCmd = &cobra.Command{
	Use:   "online",
	Short: "Stay online until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := dial(true)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sess, evt, err := c.Session(context.WithoutCancel(ctx))
		if err != nil {
			return err
		}
		fmt.Printf("%s is online. Press Ctrl-C to sign off.\n", evt.GetUserId())
		<-ctx.Done()
		return sess.Close()
	},
}

func follow(open func(ctx context.Context, c *api.Client) (*api.SnapshotStream, error)) error {
	c, err := dial(true)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream, err := open(ctx, c)
	if err != nil {
		return err
	}
	for {
		snap, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		printSnapshot(snap)
	}
}

func printSnapshot(snap sync.Snapshot) {
	if jsonFlag {
		outputJSON(snap)
		return
	}
	fmt.Printf("--- %s rev %d\n", snap.Namespace, snap.Rev)
	switch snap.Namespace.Kind {
	case sync.KindConversation:
		printMessages(snap.Messages)
	case sync.KindUnread:
		for id, n := range snap.Unread {
			fmt.Printf("%-20s %d\n", id, n)
		}
	case sync.KindInbox:
		for _, s := range snap.Inbox {
			fmt.Printf("%-20s %3d unread\n", s.Counterpart.DisplayName, s.UnreadCount)
		}
	case sync.KindPresence:
		state := "offline"
		if snap.Online {
			state = "online"
		}
		fmt.Println(snap.Namespace.Key, state)
	}
}
