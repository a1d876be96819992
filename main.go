package main

import "drinks-api/cmd"

func main() {
	cmd.Execute()
}
