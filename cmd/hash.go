package cmd

import (
	"fmt"

	"drinks-api/core/identity"

	"github.com/spf13/cobra"
)

var hashInput identity.Input

// hashCmd prints the identity hash a submission would reserve.
var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Print the identity hash of a product format",
	Long: `Prints the canonical identity and its SHA-256 hash for the given fields.
Names are trimmed and lower-cased before hashing, so "Lager X" and " lager x " collide.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if hashInput.Name == "" {
			return fmt.Errorf("--name is required")
		}
		fmt.Printf("Canonical: %s\n", hashInput.Canonical())
		fmt.Printf("Hash: %s\n", identity.Hash(hashInput))
		fmt.Printf("Slug: %s\n", identity.Slug(hashInput.Name))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(hashCmd)
	f := hashCmd.Flags()
	f.StringVar(&hashInput.Name, "name", "", "Product name")
	f.StringVar(&hashInput.BrandID, "brand", "", "Brand id")
	f.Float64Var(&hashInput.ABV, "abv", 0, "Alcohol by volume")
	f.StringVar(&hashInput.CategoryID, "category", "", "Category id")
	f.StringVar(&hashInput.PackagingID, "packaging", "", "Packaging id")
	f.IntVar(&hashInput.VolumeCc, "volume", 0, "Volume in cc")
	f.StringVar(&hashInput.TypeID, "type", "", "Beer style or spirit type id")
}
