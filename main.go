package main

import commands "keyaudit/cmd"

func main() {
	commands.Execute()
}
