package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/matheus3301/dmsync/internal/api"
	"github.com/matheus3301/dmsync/internal/config"
	"github.com/matheus3301/dmsync/internal/paths"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var (
	instanceFlag string
	userFlag     string
	jsonFlag     bool
	timeoutFlag  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "dmctl",
	Short: "Talk to a running dmsyncd instance",
	Long: `dmctl sends, edits and reads direct messages through a local dmsyncd
daemon and can follow conversations, inboxes and presence live.`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&instanceFlag, "instance", "i", "", "instance name (overrides config default)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", os.Getenv("DMSYNC_USER"), "act as this user id (default $DMSYNC_USER)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 10*time.Second, "timeout for one-shot commands")
}

// socketPath resolves the instance the same way dmsyncd does.
func socketPath() (string, error) {
	configured := ""
	if cfg, err := config.Load(paths.ConfigPath()); err == nil {
		configured = cfg.DefaultInstance
	}
	instance := paths.Resolve(instanceFlag, configured)
	if err := paths.ValidateName(instance); err != nil {
		return "", err
	}
	return paths.SocketPath(instance), nil
}

func dial(needUser bool) (*api.Client, error) {
	if needUser && userFlag == "" {
		return nil, fmt.Errorf("no user: pass --user or set DMSYNC_USER")
	}
	path, err := socketPath()
	if err != nil {
		return nil, err
	}
	c, err := api.Dial(path, userFlag)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to daemon at %s: %w", path, err)
	}
	return c, nil
}

// oneShot dials, runs fn under the command timeout and closes the client.
func oneShot(needUser bool, fn func(ctx context.Context, c *api.Client) error) error {
	c, err := dial(needUser)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()
	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()
	return fn(ctx, c)
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}

// outputProto prints a protobuf response with its proto field names.
func outputProto(m proto.Message) {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
