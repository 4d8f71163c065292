package main

import "github.com/mstern/cubekit/internal/cli"

func main() {
	cli.Execute()
}
