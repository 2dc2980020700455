package main

import "github.com/skufirovan/command-line-emulator/cmd"

func main() {
	cmd.Execute()
}
