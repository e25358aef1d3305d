package main

import "github.com/aalvaropc/calckit/internal/cli"

func main() {
	cli.Execute()
}
