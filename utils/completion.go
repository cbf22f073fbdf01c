package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mcl-launcher/mcl/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var completionFiles = map[string]string{
	"bash":       "completion.sh",
	"fish":       "completion.fish",
	"powershell": "completion.ps1",
	"zsh":        "completion.zsh",
}

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash/fish/powershell/zsh]",
	Short: "Generates bash/fish/powershell/zsh completion commands",
	Long: `Generates bash/fish/powershell/zsh completion commands, saving them in the mcl data folder.
Use --source to print them instead, e.g. "source <(mcl utils completion bash --source)"`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "fish", "powershell", "zsh"},
	Run: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("utils.completion.source") {
			if err := genCompletion(cmd.Root(), args[0], os.Stdout); err != nil {
				fmt.Printf("Error generating completion file: %s\n", err)
				os.Exit(1)
			}
			return
		}

		file, err := getConfigPath(completionFiles[args[0]])
		if err != nil {
			fmt.Printf("Error saving completion file: %s\n", err)
			os.Exit(1)
		}
		f, err := os.Create(file)
		if err != nil {
			fmt.Printf("Error saving completion file: %s\n", err)
			os.Exit(1)
		}
		err = genCompletion(cmd.Root(), args[0], f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			fmt.Printf("Error saving completion file: %s\n", err)
			os.Exit(1)
		}
		fmt.Println("Completions saved to " + file)
		fmt.Println("Load this file from your shell profile to enable them.")
	},
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	case "zsh":
		return root.GenZshCompletion(w)
	}
	return fmt.Errorf("unsupported shell %s", shell)
}

func getConfigPath(fileName string) (string, error) {
	dir, err := core.GetLocalStore()
	if err != nil {
		return "", err
	}
	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

func init() {
	utilsCmd.AddCommand(completionCmd)

	completionCmd.Flags().Bool("source", false, "Output the source of the commands, rather than saving them")
	_ = viper.BindPFlag("utils.completion.source", completionCmd.Flags().Lookup("source"))
}
