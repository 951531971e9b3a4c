package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"stlsave/gamedata"
	"stlsave/power"
	"stlsave/prefs"
	"stlsave/save"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "stlsave",
		Short:         "Star Trek Legends save decoder",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newCopyCmd())
	cmd.AddCommand(newConstantsCmd())
	cmd.AddCommand(newMaxStatsCmd())
	return cmd
}

// savePathArg resolves the save file to operate on: an explicit
// argument wins, otherwise the platform path under the user's home.
func savePathArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return prefs.SavePath(home), nil
}

func newDecodeCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decrypt the save file and write it as JSON",
		Long: `Decrypt all three save slots and write the decoded document as
indented JSON. Without an argument the save file is read from the
game's preference container under the current user's home directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := savePathArg(args)
			if err != nil {
				return err
			}
			slog.Debug("reading save file", "path", path)
			raw, err := prefs.Load(path)
			if err != nil {
				return err
			}
			doc, err := save.Decode(raw)
			if err != nil {
				return err
			}
			if err := prefs.WriteJSON(out, doc); err != nil {
				return err
			}
			slog.Info("decoded", "slots", len(doc), "output", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "startrek.json", "output file")
	return cmd
}

func newCopyCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "copy [file]",
		Short: "Copy the save file out of the game's container",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := savePathArg(args)
			if err != nil {
				return err
			}
			if err := prefs.Copy(path, out); err != nil {
				return err
			}
			slog.Info("copied", "from", path, "to", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "startrek.plist", "output file")
	return cmd
}

func newConstantsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Export the static game-data tables as JSON files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gamedata.Export(dir); err != nil {
				return err
			}
			slog.Info("exported constants", "dir", dir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "constants", "output directory")
	return cmd
}

func newMaxStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maxstats",
		Short: "Print the maximum possible particle stats and their power",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := power.MaxParticleStats()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(stats, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
