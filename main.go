package main

import "github.com/ValentinKolb/lockey/cmd"

func main() {
	cmd.Execute()
}
