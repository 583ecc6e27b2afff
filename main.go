package main

import "github.com/shiroyk/biscuit/cmd"

func main() {
	cmd.Execute()
}
