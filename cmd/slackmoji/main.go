// Command slackmoji is an admin CLI over the Slack custom emoji API: list,
// inspect, upload and remove custom emoji in a workspace using
// browser-extracted credentials.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	slackmoji "github.com/slackmoji/slackmoji"
)

var (
	workspace string
	token     string
	cookie    string
	baseURL   string
	debug     bool
)

const requestTimeout = 30 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slackmoji",
		Short: "Manage custom emoji in a Slack workspace",
		Long: "slackmoji lists, inspects, uploads and removes custom emoji using the\n" +
			"undocumented emoji admin endpoints. Credentials come from flags or the\n" +
			"SLACKMOJI_WORKSPACE, SLACKMOJI_TOKEN and SLACKMOJI_COOKIE environment\n" +
			"variables.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("SLACKMOJI_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&workspace, "workspace", "", "Workspace subdomain, e.g. acme for acme.slack.com")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Session API token (xoxc-...)")
	rootCmd.PersistentFlags().StringVar(&cookie, "cookie", "", "Session cookie value (xoxd-...)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Override the derived API base URL (testing/proxies)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newAliasCmd())
	rootCmd.AddCommand(newRemoveCmd())

	return rootCmd
}

// newClient builds a client from environment config with flag overrides.
func newClient() (*slackmoji.Client, error) {
	cfg, err := slackmoji.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if workspace != "" {
		cfg.Workspace = workspace
	}
	if token != "" {
		cfg.Token = token
	}
	if cookie != "" {
		cfg.Cookie = cookie
	}
	var opts []slackmoji.Option
	if baseURL != "" {
		opts = append(opts, slackmoji.WithBaseURL(baseURL))
	}
	return slackmoji.New(cfg, opts...)
}

func newListCmd() *cobra.Command {
	var queries []string
	var sortBy, sortDir string
	var page, count int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom emoji in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			start := time.Now()
			resp, err := c.ListEmoji(ctx, slackmoji.ListEmojiRequest{
				Queries: queries,
				SortBy:  slackmoji.SortBy(sortBy),
				SortDir: slackmoji.SortDir(sortDir),
				Page:    page,
				Count:   count,
			})
			if err != nil {
				log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("list emoji failed")
				return err
			}

			log.Debug().
				Int("returned", len(resp.Emoji)).
				Int("total", resp.CustomEmojiTotalCount).
				Int("page", resp.Paging.Page).
				Int("pages", resp.Paging.Pages).
				Dur("elapsed", time.Since(start)).
				Msg("list emoji completed")

			// Output full JSON so scripts can parse the response without
			// needing the Go client types.
			b, _ := json.MarshalIndent(resp, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&queries, "query", nil, "Free-text filter (repeatable)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Sort key: name or created (default created)")
	cmd.Flags().StringVar(&sortDir, "sort-dir", "", "Sort direction: asc or desc (default desc)")
	cmd.Flags().IntVar(&page, "page", 0, "1-based page number (default 1)")
	cmd.Flags().IntVar(&count, "count", 0, "Page size (default 100)")

	return cmd
}

func newInfoCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the record for a single emoji",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			info, err := c.GetEmojiInfo(ctx, name)
			if err != nil {
				log.Error().Err(err).Str("name", name).Msg("get emoji info failed")
				return err
			}
			b, _ := json.MarshalIndent(info, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Emoji name without colons (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUploadCmd() *cobra.Command {
	var name, file string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload an image file as a new custom emoji",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			start := time.Now()
			if err := c.AddEmoji(ctx, name, f); err != nil {
				log.Error().Err(err).Str("name", name).Str("file", file).Dur("elapsed", time.Since(start)).Msg("upload emoji failed")
				return err
			}
			log.Debug().Str("name", name).Dur("elapsed", time.Since(start)).Msg("upload emoji completed")
			fmt.Printf("Emoji uploaded: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Emoji name without colons (required)")
	cmd.Flags().StringVar(&file, "file", "", "Path to the image file (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newAliasCmd() *cobra.Command {
	var name, aliasFor string

	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Register a new name as an alias for an existing emoji",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := c.AddEmojiAlias(ctx, name, aliasFor); err != nil {
				log.Error().Err(err).Str("name", name).Str("alias_for", aliasFor).Msg("alias emoji failed")
				return err
			}
			fmt.Printf("Alias created: %s -> %s\n", name, aliasFor)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New alias name (required)")
	cmd.Flags().StringVar(&aliasFor, "alias-for", "", "Existing emoji to point at (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("alias-for")

	return cmd
}

func newRemoveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a custom emoji from the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := c.RemoveEmoji(ctx, name); err != nil {
				log.Error().Err(err).Str("name", name).Msg("remove emoji failed")
				return err
			}
			fmt.Printf("Emoji removed: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Emoji name without colons (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
