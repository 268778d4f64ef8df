package main

import "github.com/ideamans/svgicons/cmd/svgicons/cmd"

func main() {
	cmd.Execute()
}
