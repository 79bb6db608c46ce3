package main

import (
	"fmt"
	"strconv"

	"contract_tracker/internal/usecase"

	"github.com/spf13/cobra"
)

var blueprintColumns = []column{
	{title: "ID", width: 30},
	{title: "NAME", width: 30},
	{title: "FIELDS", width: 8},
	{title: "CREATED", width: 12},
}

func (c *cli) blueprintsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "blueprints",
		Aliases: []string{"blueprint", "b"},
		Short:   "List and remove blueprints",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List blueprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bps := c.app.Blueprints.List()
			rows := make([][]string, 0, len(bps))
			for _, bp := range bps {
				rows = append(rows, []string{bp.ID, bp.Name, strconv.Itoa(len(bp.Fields)), bp.CreatedAt})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable(blueprintColumns, rows, nil))
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a blueprint and its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bp, ok := c.app.Blueprints.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", usecase.ErrBlueprintNotFound, args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render(bp.Name))
			if bp.Description != "" {
				fmt.Fprintln(out, mutedStyle.Render(bp.Description))
			}
			rows := make([][]string, 0, len(bp.Fields))
			for _, f := range bp.Fields {
				req := ""
				if f.Required {
					req = "yes"
				}
				rows = append(rows, []string{f.ID, f.Label, string(f.Type), fmt.Sprintf("%g,%g", f.Position.X, f.Position.Y), req})
			}
			fmt.Fprint(out, renderTable([]column{
				{title: "ID", width: 22},
				{title: "LABEL", width: 32},
				{title: "TYPE", width: 11},
				{title: "AT", width: 10},
				{title: "REQUIRED", width: 9},
			}, rows, nil))
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blueprint; contracts generated from it are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bp, ok := c.app.Blueprints.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", usecase.ErrBlueprintNotFound, args[0])
			}
			out := cmd.OutOrStdout()
			if !c.confirm(out, fmt.Sprintf("Are you sure you want to delete blueprint %q?", bp.Name)) {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
			if err := c.app.Blueprints.Delete(cmd.Context(), bp.ID); err != nil {
				return err
			}
			fmt.Fprintf(out, "Blueprint %s deleted.\n", bp.ID)
			return nil
		},
	}

	cmd.AddCommand(list, show, del)
	return cmd
}
