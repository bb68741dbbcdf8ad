package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/decker502/launcher/pkg/launch"
	"github.com/decker502/launcher/pkg/tui"
)

func tuiCmd(o *rootOptions, r runners) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [catalog]",
		Short: "Run the launcher in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, key := o.catalogPath(args)
			c, err := o.loader(path)()
			if err != nil {
				return err
			}

			// 终端被界面占用，详细日志写到文件
			if o.cfg.Verbose {
				logPath := filepath.Join(os.TempDir(), "launcher-tui.log")
				f, err := tea.LogToFile(logPath, "")
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				fmt.Fprintf(cmd.ErrOrStderr(), "logging to %s\n", logPath)
			}

			return r.tui(c, tui.Options{Launcher: launch.New(), CatalogKey: key})
		},
	}
}
