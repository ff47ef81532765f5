package main

import "policychat/internal/cli"

func main() {
	cli.Execute()
}
