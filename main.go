package main

import "github.com/Geet-manik/LearnTreeEdu/cmd"

func main() {
	cmd.Execute()
}
