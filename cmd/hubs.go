package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"pg-atlas/config"
)

var hubsCmd = &cobra.Command{
	Use:   "hubs",
	Short: "Print the configured hub → coordinate table",
	Run: func(cmd *cobra.Command, args []string) {
		printHubs()
	},
}

func init() {
	rootCmd.AddCommand(hubsCmd)
}

func printHubs() {
	cfg := config.Load()
	atlas, err := config.LoadAtlas(cfg.AtlasPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load atlas config: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(atlas.Hubs))
	width := runewidth.StringWidth("Citywide default")
	for name := range atlas.Hubs {
		names = append(names, name)
		if w := runewidth.StringWidth(name); w > width {
			width = w
		}
	}
	sort.Strings(names)

	for _, name := range names {
		coord := atlas.Hubs[name]
		fmt.Printf("%s  %9.4f  %9.4f\n", runewidth.FillRight(name, width), coord.Lat, coord.Lon)
	}
	fmt.Printf("%s  %9.4f  %9.4f\n",
		runewidth.FillRight("Citywide default", width), atlas.CityCenter.Lat, atlas.CityCenter.Lon)
}
