package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shgportal/internal/location"
	"shgportal/internal/repository/postgres"
	"shgportal/internal/seedimport"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data into the database",
}

var seedLocationsCmd = &cobra.Command{
	Use:   "locations [file]",
	Short: "Replace the location tree with a YAML or XLSX seed",
	Long: `Replace every district, block, gram panchayat, village and SHG stored in
the database. Without a file the embedded Tripura seed is loaded. Files ending
in .xlsx are read in the SHG member report layout, with an optional Products
sheet; anything else is parsed as YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeedLocations,
}

func runSeedLocations(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	tree, err := readTree(path)
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := postgres.NewLocationRepo(db).ReplaceTree(cmd.Context(), tree); err != nil {
		return err
	}

	var shgs int
	tree.Walk(location.Path{}, func(location.Path, location.SHG) { shgs++ })
	zl.Info("location tree seeded",
		zap.String("source", sourceName(path)),
		zap.Int("districts", len(tree.Districts())),
		zap.Int("shgs", shgs),
	)
	return nil
}

func readTree(path string) (*location.Tree, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return location.LoadSeedFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return seedimport.ReadXLSX(f)
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
