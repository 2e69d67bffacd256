package main

import "github.com/mroblesd/hotel-reservation/cmd"

func main() {
	cmd.Execute()
}
