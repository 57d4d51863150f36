package main

import "github.com/mouse-blink/modegen/cmd"

func main() {
	cmd.Execute()
}
