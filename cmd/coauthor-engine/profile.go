// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/coauthor-engine/internal/scholar"
	"github.com/pdiddy/coauthor-engine/pkg/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile [scholar-id]",
	Short: "Fetch and display a scholar profile summary",
	Long: `Profile resolves a scholar ID and prints the profile summary: name,
affiliation, citation count, and the publication list. Use --snapshot to
save the profile as a YAML file for later inspection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().String("snapshot", "", "write the profile to this YAML file")
	profileCmd.Flags().Bool("json", false, "output the profile as JSON")
	profileCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	scholarID := defaultScholarID
	if len(args) == 1 {
		scholarID = args[0]
	}

	svc := scholar.NewClient(scholarClientConfig(cmd))

	profile, err := svc.ResolveAuthor(context.Background(), scholarID)
	if err != nil {
		return err
	}

	snapshot, _ := cmd.Flags().GetString("snapshot")
	if snapshot != "" {
		if err := scholar.WriteSnapshot(profile, snapshot); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Snapshot written to %s\n", snapshot)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	printProfile(profile)
	return nil
}

func printProfile(profile *types.AuthorProfile) {
	fmt.Printf("%s (%s)\n", profile.Name, profile.ID)
	if profile.Affiliation != "" {
		fmt.Println(profile.Affiliation)
	}
	if len(profile.Interests) > 0 {
		fmt.Println("Interests:", strings.Join(profile.Interests, ", "))
	}
	if profile.CitedBy > 0 {
		fmt.Printf("Cited by: %d\n", profile.CitedBy)
	}

	fmt.Printf("\n%-4s  %-60s  %s\n", "#", "Title", "Year")
	fmt.Println(strings.Repeat("-", 72))
	for i, pub := range profile.Publications {
		title := pub.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		year := ""
		if pub.Year > 0 {
			year = fmt.Sprintf("%d", pub.Year)
		}
		fmt.Printf("%-4d  %-60s  %s\n", i+1, title, year)
	}
	fmt.Printf("\n%d publication(s)\n", len(profile.Publications))
}
