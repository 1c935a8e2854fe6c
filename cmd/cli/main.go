package main

import "github.com/keurnel/assembler/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
