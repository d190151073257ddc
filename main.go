package main

import "common-utils/cmd"

func main() {
	cmd.Execute()
}
