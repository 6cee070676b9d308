package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"depsolve-judge/internal/app"
)

// runJudge loads the four positional input files and prints the
// judge's single result line: "cost <N>\n" on success. Errors are
// handled by Execute via exitCodeForError, which writes "E: <message>".
func runJudge(cmd *cobra.Command, args []string) error {
	service := app.NewService()
	result, err := service.Judge(cmd.Context(), app.JudgeRequest{
		RepositoryPath:  args[0],
		InitialPath:     args[1],
		CommandsPath:    args[2],
		ConstraintsPath: args[3],
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "cost %d\n", result.Cost)
	return nil
}
