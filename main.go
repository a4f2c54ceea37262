package main

import (
	"os"

	"github.com/Pranshu640/Kanban-Ticketing-System/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
