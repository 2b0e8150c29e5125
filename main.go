package main

import "github.com/jfmyers9/topsongs/cmd"

func main() {
	cmd.Execute()
}
