package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(AppName + ": ")

	err := NewApp(parseArgs()).Run()
	if err != nil {
		log.Fatal(err)
	}
}
