package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.hacdias.com/folio/core"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every post and project can be served",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := core.ParseConfig()
		if err != nil {
			return err
		}

		co := core.NewCore(c)

		posts, err := co.GetPosts()
		if err != nil {
			return err
		}

		projects, err := co.GetProjects()
		if err != nil {
			return err
		}

		problems, err := co.CheckContent()
		if err != nil {
			return err
		}

		fmt.Printf("%d posts, %d projects\n", len(posts), len(projects))

		for _, p := range posts {
			if p.Time().IsZero() {
				fmt.Println("W", p.Slug, "has no valid date")
			}
		}

		for _, p := range problems {
			fmt.Println("E", p.Err)
		}

		if len(problems) > 0 {
			return fmt.Errorf("%d invalid projects", len(problems))
		}

		return nil
	},
}
