package main

import (
	"fmt"

	"github.com/hupe1980/advkit/fsutil"
	"github.com/spf13/cobra"
)

// PermsResponse is the output of the perms command.
type PermsResponse struct {
	Path     string        `json:"path"`
	Group    string        `json:"group"`
	Mode     string        `json:"mode"`
	Failures []PermFailure `json:"failures"`
}

// PermFailure is one path whose permissions could not be set.
type PermFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

func (c *cli) permsCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "perms <path>",
		Short: "Give a group access to a directory tree",
		Long: `Change the group of every directory and file below path and set mode 0774.

Every failure is reported; a partial failure exits non-zero.

Examples:
  advkit perms ./manifests --group ml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			err := fsutil.SetGroupPermissionsRecursive(fsutil.Default, root, group)
			failures := fsutil.PermissionErrors(err)
			if err != nil && len(failures) == 0 {
				return err
			}

			resp := PermsResponse{
				Path:     root,
				Group:    group,
				Mode:     fmt.Sprintf("%#o", fsutil.GroupMode),
				Failures: make([]PermFailure, 0, len(failures)),
			}
			for _, f := range failures {
				resp.Failures = append(resp.Failures, PermFailure{Path: f.Path, Error: f.Err.Error()})
			}

			out := cmd.OutOrStdout()
			if c.human {
				for _, f := range resp.Failures {
					outputHuman(out, "failed: %s: %s\n", f.Path, f.Error)
				}
				if len(resp.Failures) == 0 {
					outputHuman(out, "Set group %s and mode %s on %s\n", group, resp.Mode, root)
				}
			} else if err := outputJSON(out, resp); err != nil {
				return err
			}

			if len(failures) > 0 {
				return reportedError(fmt.Errorf("%d paths could not be updated", len(failures)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Group name or numeric id")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
