package cli

import (
	"fmt"

	"github.com/diillson/aws-cost-report/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
   ___          _     ___                       _   
  / __|___  ___| |_  | _ \___ _ __  ___ _ _ ___| |_ 
 | (__/ _ \(_-<  _| |   / -_) '_ \/ _ \ '_|_-<  _|
  \___\___//__/\__| |_|_\___| .__/\___/_| /__/\__|
                            |_|                    
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	if versionStr == "" {
		versionStr = version.FormatVersion()
	}
	fmt.Println(blue(fmt.Sprintf("AWS Cost Report CLI (v%s)", versionStr)))
}
