package cli

import (
	"io"

	"github.com/spf13/cobra"

	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// writeCompletion writes the completion script for shell to w.
//
// To load completions:
//
//	Bash:       source <(gitsnitch --completion bash)
//	Zsh:        gitsnitch --completion zsh > "${fpath[1]}/_gitsnitch"
//	Fish:       gitsnitch --completion fish | source
//	PowerShell: gitsnitch --completion powershell | Out-String | Invoke-Expression
func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return snitcherrors.New(snitcherrors.ErrCodeInvalidInput, "unsupported shell %q (want one of %v)", shell, completionShells)
}
