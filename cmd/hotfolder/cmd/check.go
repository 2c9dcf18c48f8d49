package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotfolder/hotfolder/internal/consts"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check requirements",
	Long:  `Validate the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+consts.CheckDocumentString, err)

			return
		}()

		err = checkConfigCmdRun()
		return
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
