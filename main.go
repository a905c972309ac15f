/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "logshort-launcher/cmd"

func main() {
	cmd.Execute()
}
