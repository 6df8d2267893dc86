package main

import "bistro-api/cli"

func main() {
	cli.Execute()
}
