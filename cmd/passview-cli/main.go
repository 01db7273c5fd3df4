package main

import "passview/cmd/passview-cli/cmd"

func main() {
	cmd.Execute()
}
