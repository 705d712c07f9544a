package main

import "github.com/Tiliavir/uren/cmd"

func main() {
	cmd.Execute()
}
