package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.hacdias.com/folio/core"
	"go.hacdias.com/folio/services/csvfile"
	"go.hacdias.com/folio/services/database"
)

func init() {
	rootCmd.AddCommand(leadsCmd)
}

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Print the leads stored in the local database as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := core.ParseConfig()
		if err != nil {
			return err
		}

		if c.Leads.Sink != core.SinkBolt {
			return errors.New("leads are only listed from the bolt sink, other sinks can be read directly")
		}

		db, err := database.NewDatabase(c.Leads.Bolt)
		if err != nil {
			return err
		}
		defer db.Close()

		leads, err := db.GetLeads(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Print(csvfile.Line(append([]string{"id"}, core.LeadHeader...)))
		for _, l := range leads {
			fmt.Print(csvfile.Line(append([]string{l.ID}, l.Record()...)))
		}
		return nil
	},
}
