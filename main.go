package main

import "kinobilet-cli/cmd"

func main() {
	cmd.Execute()
}
