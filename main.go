package main

import "github.com/notargets/reslib/cmd"

func main() {
	cmd.Execute()
}
