package main

import (
	"fmt"
	"os"
	"strconv"

	"contract_tracker/internal/domain/entities"
	"contract_tracker/internal/usecase"

	"github.com/spf13/cobra"
)

var contractColumns = []column{
	{title: "ID", width: 8},
	{title: "NAME", width: 34},
	{title: "TYPE", width: 28},
	{title: "STATUS", width: 10},
	{title: "CREATED", width: 12},
	{title: "CLIENT", width: 24},
}

func (c *cli) contractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contracts",
		Aliases: []string{"contract", "c"},
		Short:   "List and move contracts through the pipeline",
	}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List contracts, optionally filtered by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := usecase.ParseStatusFilter(status)
			if err != nil {
				return err
			}
			result := c.app.Contracts.Filter(filter)
			out := cmd.OutOrStdout()

			rows := make([][]string, 0, len(result.Contracts))
			for _, ct := range result.Contracts {
				rows = append(rows, []string{strconv.Itoa(ct.ID), ct.Name, ct.Type, string(ct.Status), ct.CreatedAt, ct.ClientName})
			}
			fmt.Fprint(out, renderTable(contractColumns, rows, func(row, col int, s string) string {
				if col == 3 {
					return statusStyle(result.Contracts[row].Status).Render(s)
				}
				return s
			}))
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d of %d contracts (%s)", len(result.Contracts), result.Total, filter)))
			return nil
		},
	}
	list.Flags().StringVarP(&status, "status", "s", "", "All, Created, Approved, Sent, Signed, Locked or Revoked")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := c.contract(args[0])
			if err != nil {
				return err
			}
			return c.printContract(cmd, ct.ID, "text", "")
		},
	}

	advance := &cobra.Command{
		Use:   "advance <id>",
		Short: "Move a contract to its next pipeline stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := c.contract(args[0])
			if err != nil {
				return err
			}
			if !ct.Status.CanAdvance() {
				fmt.Fprintf(cmd.OutOrStdout(), "Contract %d is %s; nothing to advance.\n", ct.ID, ct.Status)
				return nil
			}
			if err := c.app.Contracts.Advance(cmd.Context(), ct.ID); err != nil {
				return err
			}
			next, _ := c.app.Contracts.Get(ct.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Contract %d: %s -> %s\n", ct.ID, ct.Status, statusStyle(next.Status).Render(string(next.Status)))
			return nil
		},
	}

	revoke := &cobra.Command{
		Use:   "revoke <id>",
		Short: "Revoke a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := c.contract(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ct.Status.CanRevoke() {
				fmt.Fprintf(out, "Contract %d is already revoked.\n", ct.ID)
				return nil
			}
			if !c.confirm(out, fmt.Sprintf("Are you sure you want to revoke contract %d (%s)?", ct.ID, ct.Name)) {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
			if err := c.app.Contracts.Revoke(cmd.Context(), ct.ID); err != nil {
				return err
			}
			fmt.Fprintf(out, "Contract %d revoked.\n", ct.ID)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := c.contract(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !c.confirm(out, fmt.Sprintf("Are you sure you want to delete contract %d (%s)?", ct.ID, ct.Name)) {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
			if err := c.app.Contracts.Delete(cmd.Context(), ct.ID); err != nil {
				return err
			}
			fmt.Fprintf(out, "Contract %d deleted.\n", ct.ID)
			return nil
		},
	}

	var format, output string
	printCmd := &cobra.Command{
		Use:   "print <id>",
		Short: "Render a contract for printing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := c.contract(args[0])
			if err != nil {
				return err
			}
			return c.printContract(cmd, ct.ID, format, output)
		},
	}
	printCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or html")
	printCmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	cmd.AddCommand(list, show, advance, revoke, del, printCmd)
	return cmd
}

func (c *cli) contract(arg string) (entities.Contract, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return entities.Contract{}, fmt.Errorf("invalid contract id %q", arg)
	}
	ct, ok := c.app.Contracts.Get(id)
	if !ok {
		return entities.Contract{}, fmt.Errorf("%w: %d", usecase.ErrContractNotFound, id)
	}
	return ct, nil
}

func (c *cli) printContract(cmd *cobra.Command, id int, format, output string) error {
	printer := c.app.Printer
	if output != "" {
		printer = c.app.FilePrinter
	}
	rendered, err := printer.RenderContract(cmd.Context(), id, format)
	if err != nil {
		return err
	}
	if output == "" {
		_, err = cmd.OutOrStdout().Write(rendered.Body)
		return err
	}
	if err := os.WriteFile(output, rendered.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s).\n", output, rendered.ContentType)
	return nil
}
