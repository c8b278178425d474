// cmd/main.go
package main

import cmd "github.com/mwiater/normdist/cmd/normdist"

// main starts the normdist CLI application by delegating to the
// cobra root command defined in the normdist package.
func main() {
	cmd.Execute()
}
