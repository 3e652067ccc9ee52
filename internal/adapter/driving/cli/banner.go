package cli

import (
	"fmt"

	"github.com/diillson/aws-sso-manager-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
     _____      _____     ___ ___  ___    __  __
    /_\ \ \    / / __|   / __/ __|/ _ \  |  \/  |__ _ _ _  __ _ __ _ ___ _ _
   / _ \ \ \/\/ /\__ \   \__ \__ \ (_) | | |\/| / _' | ' \/ _' / _' / -_) '_|
  /_/ \_\ \_/\_/ |___/   |___/___/\___/  |_|  |_\__,_|_||_\__,_\__, \___|_|
                                                               |___/
	`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	if versionStr == "" {
		versionStr = version.FormatVersion()
	}
	fmt.Println(blue(fmt.Sprintf("AWS SSO Manager CLI (v%s)", versionStr)))
}
