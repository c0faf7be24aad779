// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brand-engine/pkg/types"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage brand projects (create, show, list, export)",
	Long: `Project manages the local project database. Use subcommands to create
a project from business intake, inspect or list projects, or export the
database to YAML.`,
}

// --- create subcommand ---

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project from business intake",
	Long: `Create validates the business intake (name, description, industry, and
target audience are required) and persists a new project in intake status.`,
	RunE: runProjectCreate,
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	input := types.BusinessInput{}
	input.BusinessName, _ = cmd.Flags().GetString("name")
	input.BusinessDescription, _ = cmd.Flags().GetString("description")
	input.Industry, _ = cmd.Flags().GetString("industry")
	input.TargetAudience, _ = cmd.Flags().GetString("audience")
	input.PreferredStyle, _ = cmd.Flags().GetString("style")
	input.PreferredColors, _ = cmd.Flags().GetString("colors")
	if values, _ := cmd.Flags().GetString("values"); values != "" {
		for _, v := range strings.Split(values, ",") {
			if v = strings.TrimSpace(v); v != "" {
				input.BusinessValues = append(input.BusinessValues, v)
			}
		}
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	orch := readOnlyOrchestrator(st)
	p, err := orch.CreateProject(context.Background(), input)
	if err != nil {
		return err
	}
	return printJSON(p)
}

// --- show subcommand ---

var projectShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a project, its strategy, and its assets",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	p, err := st.Get(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJSON(p)
}

// --- list subcommand ---

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects, newest first",
	RunE:  runProjectList,
}

func runProjectList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	projects, err := st.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(projects)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-14s  %-30s  %s\n", "ID", "Status", "Business", "Created")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, p := range projects {
		name := p.BusinessInput.BusinessName
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-14s  %-30s  %s\n",
			p.ID, p.Status, name, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(os.Stdout, "\n%d projects\n", len(projects))
	return nil
}

// --- export subcommand ---

var projectExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the project database to YAML",
	RunE:  runProjectExport,
}

func runProjectExport(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	output, _ := cmd.Flags().GetString("output")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := st.ExportYAML(context.Background(), w, limit); err != nil {
		return err
	}
	if output != "" {
		fmt.Println("Exported to", output)
	}
	return nil
}

// --- shared helpers ---

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	// Create flags mirror the intake fields.
	projectCreateCmd.Flags().String("name", "", "business name (required)")
	projectCreateCmd.Flags().String("description", "", "what the business does (required)")
	projectCreateCmd.Flags().String("industry", "", "industry or sector (required)")
	projectCreateCmd.Flags().String("audience", "", "target audience (required)")
	projectCreateCmd.Flags().String("values", "", "business values (comma-separated)")
	projectCreateCmd.Flags().String("style", "", "preferred visual style")
	projectCreateCmd.Flags().String("colors", "", "preferred colors")

	projectListCmd.Flags().Int("limit", 0, "maximum projects to list (0 = default)")
	projectListCmd.Flags().Bool("json", false, "output as JSON")

	projectExportCmd.Flags().Int("limit", 0, "maximum projects to export (0 = default)")
	projectExportCmd.Flags().String("output", "", "write to a file instead of stdout")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectExportCmd)

	rootCmd.AddCommand(projectCmd)
}
