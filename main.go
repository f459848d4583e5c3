package main

import "github.com/organicstore/storefront/cmd"

func main() {
	cmd.Start()
}
