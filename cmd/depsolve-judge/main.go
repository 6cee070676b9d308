// Command depsolve-judge checks a package install/uninstall solution
// against a repository's dependency and conflict rules and reports
// its total cost.
package main

import "depsolve-judge/internal/cli"

func main() {
	cli.Execute()
}
