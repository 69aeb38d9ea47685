package main

import "github.com/coursecraft/snipmint/internal/cli"

func main() {
	cli.Execute()
}
