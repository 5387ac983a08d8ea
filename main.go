package main

import "github.com/glanceworks/tododash/cmd"

func main() {
	cmd.Execute()
}
