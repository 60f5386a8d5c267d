package main

import "github.com/mouse-blink/flagstrip/cmd"

func main() {
	cmd.Execute()
}
