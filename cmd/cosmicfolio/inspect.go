package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/cosmicfolio/cosmicfolio/internal/game"
)

//nolint:gochecknoglobals // Cobra boilerplate
var layoutTime float64

//nolint:gochecknoglobals // Cobra boilerplate
var stateDiscover []string

//nolint:gochecknoglobals // Cobra boilerplate
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print every body's position at a point in time",
	Long: `Print the position of every body and project moon at --time seconds,
without opening a window.

Example:
  cosmicfolio layout --time 30 --store :memory:`,
	RunE: runLayout,
}

//nolint:gochecknoglobals // Cobra boilerplate
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Dump the exploration state",
	Long: `Dump the exploration state and the announced achievements, optionally after
discovering some skills. Discoveries are not persisted, but announced banners are.

Example:
  cosmicfolio state --discover react,typescript`,
	RunE: runState,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(stateCmd)
	layoutCmd.Flags().Float64Var(&layoutTime, "time", 0, "scene time in seconds")
	stateCmd.Flags().StringSliceVar(&stateDiscover, "discover", nil, "skill ids to discover first")
}

func runLayout(cmd *cobra.Command, args []string) (err error) {
	var s *session
	s, err = openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	s.scene.Tick(layoutTime)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tPROJECT\tX\tY\tZ\tRADIUS")
	for _, p := range s.scene.Primitives() {
		project := "-"
		if p.Project >= 0 {
			project = fmt.Sprint(p.Project)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\t%.3f\t%.3f\t%.2f\n",
			p.BodyID, game.BodyKindName(p.Kind), project, p.Position.X, p.Position.Y, p.Position.Z, p.Radius)
	}
	return tw.Flush()
}

func runState(cmd *cobra.Command, args []string) (err error) {
	var s *session
	s, err = openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	for _, id := range stateDiscover {
		s.scene.DiscoverSkill(id)
	}
	// one tick shows, and records, the first pending banner
	s.scene.Tick(0)

	dump := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
	dump.Fdump(os.Stdout, s.scene.State())
	fmt.Printf("pending banners: %d\n", len(s.scene.PendingAchievements()))
	fmt.Printf("announced: %v\n", s.notified.IDs())
	if verbose {
		for _, m := range s.scene.Log.Messages {
			fmt.Println(m.Text)
		}
	}
	return nil
}
