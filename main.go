/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/fedefreue/developers-agent-toolkit/cmd"

func main() {
	cmd.Execute()
}
