package main

import "github.com/acaudwell03/music-eda/cmd"

func main() {
	cmd.Execute()
}
