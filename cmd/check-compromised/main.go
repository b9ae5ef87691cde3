package main

import "check-compromised/internal/cli"

func main() {
	cli.Execute()
}
