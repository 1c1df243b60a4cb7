package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/pup/pkg/diary"
	"tableflip.dev/pup/pkg/kv"
	"tableflip.dev/pup/pkg/printers"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pup",
		Short: base.Wrap80("A puppy training diary and supply checklist on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addCheck(topLevel)
	addKit(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// loadStore opens the configured backend and builds the diary store with a
// terminal renderer.
func loadStore(showID bool, opts ...diary.Option) (*diary.Store, error) {
	backend, err := kv.Open(nil)
	if err != nil {
		return nil, err
	}
	return diary.New(backend, &printers.PrettyPrint{ShowID: showID}, opts...), nil
}

// promptYesNo asks for confirmation on the command's terminal. Anything
// other than yes declines.
func promptYesNo(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
