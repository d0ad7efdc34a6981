package main

import (
	"log"

	"github.com/Thiwanka-1/Job-Search-Engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
