/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/njord/cmd/njord/cmd"
)

func main() {
	cmd.Execute()
}
